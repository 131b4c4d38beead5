package impl

import (
	"context"
	"sync"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/repository"
	"aquatrace/internal/domain/service"
)

// enricher joins entities with organization and user reference data and
// resolves testing point ids. Lookups fail soft: absent reference data
// yields zero-value placeholders, never an error.
type enricher struct {
	refClient service.ReferenceClient
	pointRepo repository.TestingPointRepository
	fanout    int
}

func newEnricher(refClient service.ReferenceClient, pointRepo repository.TestingPointRepository, fanout int) *enricher {
	if fanout < 1 {
		fanout = 1
	}

	return &enricher{
		refClient: refClient,
		pointRepo: pointRepo,
		fanout:    fanout,
	}
}

// organizationAndUser fetches the organization and one of its admin users
// concurrently. The user is the zero value when userID is empty or not among
// the organization's admins.
func (e *enricher) organizationAndUser(ctx context.Context, organizationID, userID string) (service.Organization, service.User) {
	var (
		org  service.Organization
		user service.User
		wg   sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		org = e.refClient.GetOrganization(ctx, organizationID)
	}()

	if userID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, admin := range e.refClient.GetOrganizationAdmins(ctx, organizationID) {
				if admin.ID == userID {
					user = admin
					break
				}
			}
		}()
	}

	wg.Wait()

	return org, user
}

// resolveTestingPoints loads the given testing points from the store,
// dropping ids that fail to resolve.
func (e *enricher) resolveTestingPoints(ctx context.Context, ids []string) []*entity.TestingPoint {
	points := make([]*entity.TestingPoint, 0, len(ids))
	for _, id := range ids {
		point, err := e.pointRepo.FindByID(ctx, id)
		if err != nil {
			continue
		}

		points = append(points, point)
	}

	return points
}

type indexedResult[R any] struct {
	index  int
	result R
}

// mapConcurrent applies fn to every item through a bounded worker pool and
// returns the results in input order.
func mapConcurrent[T, R any](ctx context.Context, fanout int, items []T, fn func(context.Context, T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	workerCount := fanout
	if len(items) < workerCount {
		workerCount = len(items)
	}

	workCh := make(chan int)
	resultCh := make(chan indexedResult[R])

	var workerGroup sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range workCh {
				resultCh <- indexedResult[R]{index: idx, result: fn(ctx, items[idx])}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i := range items {
			workCh <- i
		}
	}()

	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		results[res.index] = res.result
	}

	return results
}
