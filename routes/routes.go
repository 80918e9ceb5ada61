package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotwise/handlers"
	"slotwise/middleware"
)

// HandlerBundle groups the feature handlers for route registration.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Schedule *handlers.ScheduleHandler
	Meeting  *handlers.MeetingHandler
	Contact  *handlers.ContactHandler
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Auth.Me)
		api.POST("/logout", hb.Auth.Logout)
		api.DELETE("/delete", hb.Auth.DeleteAccount)
	}
}

// RegisterScheduleRoutes registers the availability engine endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/daily", hb.Schedule.GetDailySchedule)
		api.GET("/monthly", hb.Schedule.GetMonthlySchedule)
		api.POST("/create", hb.Schedule.CreateSchedule)
		api.PATCH("/edit", hb.Schedule.EditSchedule)
		api.DELETE("/delete", hb.Schedule.DeleteSchedule)
	}
}

// RegisterPublicRoutes registers the visitor-facing endpoints: availability by
// slug, meeting requests and the contact form.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/:slug/daily", hb.Schedule.PublicDailySchedule)
		api.GET("/:slug/monthly", hb.Schedule.PublicMonthlySchedule)
		api.POST("/meetings", hb.Meeting.CreateMeeting)
		api.POST("/contact", hb.Contact.CreateContact)
	}
}

// RegisterMeetingRoutes registers the owner-facing meeting endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Meeting.ListMeetings)
		api.GET("/:id", hb.Meeting.GetMeeting)
		api.POST("/:id/accept", hb.Meeting.AcceptMeeting)
		api.POST("/:id/toggle", hb.Meeting.ToggleMeeting)
		api.DELETE("/:id", hb.Meeting.DeleteMeeting)
	}
}

// RegisterContactRoutes registers the owner-facing contact endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/contacts")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Contact.ListContacts)
		api.GET("/:id", hb.Contact.GetContact)
		api.DELETE("/:id", hb.Contact.DeleteContact)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm slotwise"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
}
