package trainers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/token"
)

// RegisterRoutes wires the trainer endpoints. users is the role store
// the lifecycle transitions update alongside the trainer record;
// resolver backs the role-gated routes. It returns the repository so
// other features (class fan-outs) can query trainers.
func RegisterRoutes(
	router *gin.RouterGroup,
	db *mongo.Database,
	cfg *config.Config,
	issuer *token.Issuer,
	users UserRoleStore,
	resolver middleware.RoleResolver,
) *Repository {
	repo := NewRepository(db)
	service := NewService(repo, users, db.Client())
	handler := NewHandler(repo, service, cfg)

	admin := middleware.RequireRole(issuer, resolver, "admin")
	trainerOnly := middleware.RequireRole(issuer, resolver, RoleTrainer)

	trainers := router.Group("/trainers")
	{
		trainers.GET("", handler.List)
		trainers.GET("/featured", handler.Featured)
		trainers.POST("/apply", middleware.Auth(issuer), handler.Apply)
		trainers.PATCH("/slots", trainerOnly, handler.UpdateSlots)
		trainers.GET("/applications", admin, handler.Applications)
		trainers.GET("/:id", handler.Get)
		trainers.PATCH("/:id/approve", admin, handler.Approve)
		trainers.PATCH("/:id/reject", admin, handler.Reject)
		trainers.PATCH("/:id/demote", admin, handler.Demote)
	}

	return repo
}
