package pricing

import (
	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List membership plans
// @Tags pricing
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /pricing [get]
func (h *Handler) List(c *gin.Context) {
	plans, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to list pricing plans")
		return
	}

	response.Success(c, plans)
}
