package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathV1            = "/v1"
	PathCatalog       = "/catalog"
	PathEstimates     = "/estimates"
	PathSessions      = "/wizard/sessions"
	PathQuotes        = "/quotes"
	PathConsultations = "/consultations"
)

func addEstimatorRoutes(rg *gin.RouterGroup, app *application) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", app.catalogHandler.ListServices)
		catalog.GET("/services/:service_id", app.catalogHandler.GetService)
		catalog.GET("/options", app.catalogHandler.Options)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/quote", app.estimateHandler.Quote)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", app.wizardHandler.StartSession)
		sessions.GET("/:session_id", app.wizardHandler.GetSession)
		sessions.DELETE("/:session_id", app.wizardHandler.EndSession)
		sessions.PUT("/:session_id/service", app.wizardHandler.SelectService)
		sessions.PUT("/:session_id/complexity", app.wizardHandler.SelectComplexity)
		sessions.POST("/:session_id/features/:feature_id/toggle", app.wizardHandler.ToggleFeature)
		sessions.POST("/:session_id/continue", app.wizardHandler.Continue)
		sessions.PUT("/:session_id/timeline", app.wizardHandler.SelectTimeline)
		sessions.PUT("/:session_id/currency", app.wizardHandler.SetCurrency)
		sessions.POST("/:session_id/back", app.wizardHandler.Back)
		sessions.POST("/:session_id/reset", app.wizardHandler.Reset)
		sessions.POST("/:session_id/consultation", app.consultationHandler.BookConsultation)
		sessions.GET("/:session_id/quotes", app.consultationHandler.ListSessionQuotes)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:quote_id", app.consultationHandler.GetQuote)
		quotes.GET("/:quote_id/consultations", app.consultationHandler.ListConsultations)
	}

	rg.GET(PathConsultations+"/:consultation_id", app.consultationHandler.GetConsultation)
}
