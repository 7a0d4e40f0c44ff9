package routes

import (
	adminapi "social-app/internal/api/admin"
	agendaapi "social-app/internal/api/agenda"
	authapi "social-app/internal/api/auth"
	"social-app/internal/api/billing"
	plansapi "social-app/internal/api/plans"
	publicationsapi "social-app/internal/api/publications"
	stripewebhooks "social-app/internal/api/stripewebhook"
	usersapi "social-app/internal/api/users"
	"social-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, billingHandler *billing.Handler, webhookHandler *stripewebhooks.Handler) {
	// The webhook must see the raw body: no sanitization, no JSON middleware.
	r.POST("/webhook", webhookHandler.HandleWebhook)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.PUT("/me", usersapi.UpdateProfile)
	auth.GET("/profile/:nick", usersapi.GetProfile)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/payments", billingHandler.CreateCheckout)
	auth.GET("/payments/my", billingHandler.MyPayments)
	auth.GET("/payments/status", billingHandler.PaymentStatus)

	auth.POST("/publications", publicationsapi.CreatePublication)
	auth.GET("/publications", publicationsapi.ListPublications)
	auth.GET("/publications/saved", publicationsapi.ListSaved)
	auth.GET("/publications/user/:id", publicationsapi.ListUserPublications)
	auth.GET("/publications/:id", publicationsapi.GetPublication)
	auth.DELETE("/publications/:id", publicationsapi.DeletePublication)

	auth.POST("/publications/:id/like", publicationsapi.ToggleLike)
	auth.POST("/publications/:id/comment", publicationsapi.AddComment)
	auth.POST("/publications/:id/save", publicationsapi.ToggleSave)
	auth.GET("/suggestions", publicationsapi.ListSuggestions)

	auth.POST("/agenda", agendaapi.CreateEntry)
	auth.GET("/agenda", agendaapi.ListByDate)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", billingHandler.AllPayments)
	admin.POST("/payments/:chargeId/complete", billingHandler.CompletePayment)
}
