package testimonials

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, issuer *token.Issuer) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	testimonials := router.Group("/testimonials")
	{
		testimonials.GET("", handler.List)
		testimonials.POST("", middleware.Auth(issuer), handler.Create)
	}
}
