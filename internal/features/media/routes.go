package media

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/middleware"
	"github.com/fitquest/api/internal/pkg/cloudinary"
	"github.com/fitquest/api/internal/pkg/token"
)

// RegisterRoutes wires the upload endpoint. When Cloudinary credentials
// are absent the route still registers but reports uploads disabled.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, issuer *token.Issuer, resolver middleware.RoleResolver) {
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "fitquest")
	if err != nil {
		log.Printf("Cloudinary disabled: %v", err)
	}

	handler := NewHandler(cld)

	media := router.Group("/media")
	{
		media.POST("/profile-image", middleware.RequireRole(issuer, resolver, "trainer"), handler.Upload)
	}
}
