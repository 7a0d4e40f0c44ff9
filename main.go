package main

import (
	"time"

	"social-app/config"
	"social-app/database"
	"social-app/internal/api/billing"
	stripewebhooks "social-app/internal/api/stripewebhook"
	routes "social-app/internal/app/http"
	"social-app/internal/domain/payments"
	stripegw "social-app/internal/infra/stripe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	gateway := stripegw.NewGateway(config.STRIPE_SECRET_KEY)
	store := payments.NewStore(database.DB)

	billingHandler := billing.NewHandler(gateway, store)
	webhookHandler := stripewebhooks.NewHandler(config.STRIPE_WEBHOOK_SECRET, store)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, billingHandler, webhookHandler)

	r.Run(":" + config.PORT)
}
