package users

import (
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/token"
)

// RegisterRoutes wires the auth and user endpoints. It returns the
// repository so the router can hand it to the access gate and to the
// trainer lifecycle service.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, issuer *token.Issuer) *Repository {
	repo := NewRepository(db)

	var firebaseClient *fbauth.Client
	if cfg.FirebaseServiceAccountPath != "" {
		client, err := InitFirebase(cfg)
		if err != nil {
			log.Printf("Firebase disabled: %v", err)
		} else {
			firebaseClient = client
		}
	}

	handler := NewHandler(repo, issuer, cfg, firebaseClient)

	auth := router.Group("/auth")
	{
		auth.POST("/token", handler.SignIn)
	}

	usersGroup := router.Group("/users")
	{
		usersGroup.POST("", handler.Register)
		usersGroup.GET("/me", middleware.Auth(issuer), handler.GetMe)
		usersGroup.GET("", middleware.RequireRole(issuer, repo, RoleAdmin), handler.List)
	}

	return repo
}
