package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/handlers"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/middleware"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/config"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/session"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/storage"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, sessions session.IManager, apiClient *upstream.Client, uploader storage.Uploader) *gin.Engine {
	// Initialize stores needed by API handlers HERE
	userStore := store.NewUserStore(apiClient)
	enquiryStore := store.NewEnquiryStore(apiClient)
	quotationStore := store.NewQuotationStore(apiClient)
	feedbackStore := store.NewFeedbackStore(apiClient)
	conversationStore := store.NewConversationStore(apiClient)
	dashboardStore := store.NewDashboardStore(apiClient)

	r := gin.Default()

	// Initialize Middleware
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(apiClient, sessions)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStore)
	usersHandler := handlers.NewUsersHandler(userStore)
	enquiriesHandler := handlers.NewEnquiriesHandler(enquiryStore)
	quotationsHandler := handlers.NewQuotationsHandler(quotationStore)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackStore, cfg.MaxScreenshots)
	conversationsHandler := handlers.NewConversationsHandler(conversationStore)
	uploadsHandler := handlers.NewUploadsHandler(uploader)

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.GET("/session", authHandler.Session)

		// Logout needs a live session to know which record to drop.
		auth.POST("/logout", middleware.SessionGuard(sessions), authHandler.Logout)
	}

	console := r.Group("/console")
	console.Use(middleware.SessionGuard(sessions))
	{
		console.GET("/dashboard", dashboardHandler.Get)

		console.GET("/sellers", usersHandler.ListSellers)
		console.GET("/buyers", usersHandler.ListBuyers)
		console.PATCH("/users/:id/status", usersHandler.UpdateStatus)
		console.PATCH("/users/:id/verify", usersHandler.Verify)

		console.GET("/enquiries", enquiriesHandler.List)
		console.GET("/enquiries/:id/quotations", enquiriesHandler.Quotations)
		console.PATCH("/enquiries/:id/status", enquiriesHandler.PatchStatus)

		console.GET("/quotations", quotationsHandler.List)
		console.PATCH("/quotations/:id/status", quotationsHandler.UpdateStatus)

		console.GET("/tickets", feedbackHandler.List)
		console.GET("/tickets/:id/messages", feedbackHandler.Messages)
		console.DELETE("/tickets/messages", feedbackHandler.ClearMessages)
		console.PATCH("/tickets/:id/status", feedbackHandler.UpdateStatus)
		console.POST("/tickets/:id/reply", feedbackHandler.Reply)

		console.GET("/conversations", conversationsHandler.List)
		console.GET("/messages", conversationsHandler.Messages)
		console.DELETE("/messages", conversationsHandler.ClearMessages)

		console.POST("/uploads", uploadsHandler.Upload)
	}

	return r
}
