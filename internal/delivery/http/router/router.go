// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aquatrace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TestingPointHandler     *handler.TestingPointHandler
	QualityParameterHandler *handler.QualityParameterHandler
	QualityTestHandler      *handler.QualityTestHandler
	DailyRecordHandler      *handler.DailyRecordHandler
	QualityIncidentHandler  *handler.QualityIncidentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	testingPointHandler     *handler.TestingPointHandler
	qualityParameterHandler *handler.QualityParameterHandler
	qualityTestHandler      *handler.QualityTestHandler
	dailyRecordHandler      *handler.DailyRecordHandler
	qualityIncidentHandler  *handler.QualityIncidentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		testingPointHandler:     params.TestingPointHandler,
		qualityParameterHandler: params.QualityParameterHandler,
		qualityTestHandler:      params.QualityTestHandler,
		dailyRecordHandler:      params.DailyRecordHandler,
		qualityIncidentHandler:  params.QualityIncidentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	pointGroup := e.Group("/api/admin/quality/samplingpoints")
	{
		pointGroup.GET("", r.testingPointHandler.GetAll)
		pointGroup.GET("/active", r.testingPointHandler.GetAllActive)
		pointGroup.GET("/inactive", r.testingPointHandler.GetAllInactive)
		pointGroup.GET("/:id", r.testingPointHandler.GetByID)
		pointGroup.POST("", r.testingPointHandler.Create)
		pointGroup.PUT("/:id", r.testingPointHandler.Update)
		pointGroup.DELETE("/:id", r.testingPointHandler.Delete)
		pointGroup.PATCH("/:id/activate", r.testingPointHandler.Activate)
		pointGroup.PATCH("/:id/deactivate", r.testingPointHandler.Deactivate)
	}

	parameterGroup := e.Group("/api/admin/quality/parameters")
	{
		parameterGroup.GET("", r.qualityParameterHandler.GetAll)
		parameterGroup.GET("/active", r.qualityParameterHandler.GetAllActive)
		parameterGroup.GET("/inactive", r.qualityParameterHandler.GetAllInactive)
		parameterGroup.GET("/:id", r.qualityParameterHandler.GetByID)
		parameterGroup.POST("", r.qualityParameterHandler.Create)
		parameterGroup.PUT("/:id", r.qualityParameterHandler.Update)
		parameterGroup.DELETE("/:id", r.qualityParameterHandler.Delete)
		parameterGroup.PATCH("/:id/activate", r.qualityParameterHandler.Activate)
		parameterGroup.PATCH("/:id/deactivate", r.qualityParameterHandler.Deactivate)
	}

	testGroup := e.Group("/api/v2/qualitytests")
	{
		testGroup.GET("", r.qualityTestHandler.GetAll)
		testGroup.GET("/:id", r.qualityTestHandler.GetByID)
		testGroup.POST("", r.qualityTestHandler.Create)
		testGroup.PUT("/:id", r.qualityTestHandler.Update)
		testGroup.DELETE("/:id", r.qualityTestHandler.Delete)
		testGroup.DELETE("/:id/physical", r.qualityTestHandler.DeletePhysically)
		testGroup.PUT("/:id/restore", r.qualityTestHandler.Restore)
	}

	recordGroup := e.Group("/api/v2/dailyrecords")
	{
		recordGroup.GET("", r.dailyRecordHandler.GetAll)
		recordGroup.GET("/:id", r.dailyRecordHandler.GetByID)
		recordGroup.POST("", r.dailyRecordHandler.Create)
		recordGroup.PUT("/:id", r.dailyRecordHandler.Update)
		recordGroup.DELETE("/:id", r.dailyRecordHandler.Delete)
		recordGroup.DELETE("/:id/physical", r.dailyRecordHandler.DeletePhysically)
		recordGroup.PUT("/:id/restore", r.dailyRecordHandler.Restore)
	}

	incidentGroup := e.Group("/api/admin/quality/reports")
	{
		incidentGroup.GET("", r.qualityIncidentHandler.GetAll)
		incidentGroup.GET("/resolved", r.qualityIncidentHandler.GetResolved)
		incidentGroup.GET("/unresolved", r.qualityIncidentHandler.GetUnresolved)
		incidentGroup.GET("/:id", r.qualityIncidentHandler.GetByID)
		incidentGroup.POST("", r.qualityIncidentHandler.Create)
		incidentGroup.PUT("/:id", r.qualityIncidentHandler.Update)
		incidentGroup.DELETE("/:id", r.qualityIncidentHandler.Delete)
		incidentGroup.DELETE("/:id/physical", r.qualityIncidentHandler.DeletePhysically)
		incidentGroup.PUT("/:id/restore", r.qualityIncidentHandler.Restore)
	}
}
