package forum

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, issuer *token.Issuer, authors AuthorLookup) {
	repo := NewRepository(db)
	handler := NewHandler(repo, authors, cfg)

	posts := router.Group("/posts")
	{
		posts.GET("", handler.List)
		posts.GET("/total", handler.Total)
		posts.GET("/recent", handler.Recent)
		posts.POST("", middleware.Auth(issuer), handler.Create)
		posts.PATCH("/:id/upvote", middleware.Auth(issuer), handler.Upvote)
	}
}
