package bookings

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, issuer *token.Issuer) {
	repo := NewRepository(db)
	gateway := NewGateway(cfg.StripeSecretKey)
	handler := NewHandler(repo, gateway, cfg)

	bookings := router.Group("/bookings")
	bookings.Use(middleware.Auth(issuer))
	{
		bookings.POST("", handler.Create)
		bookings.GET("", handler.List)
		bookings.GET("/trainer", handler.BookedTrainer)
		bookings.POST("/payment-intent", handler.PaymentIntent)
		bookings.DELETE("/:id", handler.Delete)
	}
}
