package subscribers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/token"
)

// RegisterRoutes wires the newsletter endpoints. Signup is public;
// the subscriber list is admin only.
func RegisterRoutes(
	router *gin.RouterGroup,
	db *mongo.Database,
	issuer *token.Issuer,
	resolver middleware.RoleResolver,
) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	newsletter := router.Group("/newsletter")
	{
		newsletter.POST("", handler.Subscribe)
		newsletter.GET("", middleware.RequireRole(issuer, resolver, "admin"), handler.List)
	}
}
