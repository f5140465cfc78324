package subscribers

import (
	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/pkg/response"
	"github.com/fitquest/api/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags subscribers
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Signup data"
// @Success 201 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /newsletter [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !validator.IsValidEmail(req.Email) {
		response.ValidationFailed(c, "A valid email is required")
		return
	}

	subscriber := &Subscriber{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := h.repo.Create(c.Request.Context(), subscriber); err != nil {
		response.DatabaseError(c, "Failed to subscribe")
		return
	}

	response.Created(c, subscriber)
}

// List godoc
// @Summary List newsletter subscribers
// @Tags subscribers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /newsletter [get]
func (h *Handler) List(c *gin.Context) {
	subscribers, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to list subscribers")
		return
	}

	response.Success(c, subscribers)
}
