package routes

import (
	"medibook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers all endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		wizardGroup.POST("", hb.Wizard.Start)
		wizardGroup.GET("/:sessionID", hb.Wizard.Get)
		wizardGroup.PUT("/:sessionID/date", hb.Wizard.SelectDate)
		wizardGroup.PUT("/:sessionID/slot", hb.Wizard.SelectSlot)
		wizardGroup.PUT("/:sessionID/details", hb.Wizard.SetDetails)
		wizardGroup.POST("/:sessionID/submit", hb.Wizard.Submit)
		wizardGroup.POST("/:sessionID/book-another", hb.Wizard.BookAnother)
		wizardGroup.DELETE("/:sessionID", hb.Wizard.Cancel)
	}
}
