package classes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, trainers TrainerFinder) {
	repo := NewRepository(db)
	handler := NewHandler(repo, trainers, cfg)

	classes := router.Group("/classes")
	{
		classes.GET("", handler.List)
		classes.GET("/featured", handler.Featured)
		classes.GET("/:id", handler.Get)
	}
}
