package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the handlers the route tree needs.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Doctors *handlers.DoctorHandler
	Wizard  *handlers.WizardHandler
	Admin   *handlers.AdminHandler

	AuthCache *redis.Client
}

// RegisterAuthRoutes registers sign-up/sign-in and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		api.POST("/logout", hb.Auth.Logout)
	}

	users := r.Group("/api/users")
	{
		users.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		users.GET("/profile", hb.Auth.GetProfile)
		users.PUT("/profile", hb.Auth.UpdateProfile)
	}
}

// RegisterDoctorRoutes registers the doctor directory and review endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// Browsing is public; posting a review requires a session.
		api.GET("", hb.Doctors.List)
		api.GET("/:doctorID", hb.Doctors.Get)
		api.GET("/:doctorID/reviews", hb.Doctors.ListReviews)

		api.POST("/:doctorID/reviews", middleware.JWTAuthMiddleware(hb.AuthCache), hb.Doctors.CreateReview)
	}
}

// RegisterAdminRoutes sets up endpoints for admin dashboard operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.AuthCache), middleware.RequireAdmin())
		adminGroup.GET("/overview", hb.Admin.Overview)
		adminGroup.GET("/appointments", hb.Admin.Appointments)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterWizardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
