package testimonials

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
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /testimonials [get]
func (h *Handler) List(c *gin.Context) {
	testimonials, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to list testimonials")
		return
	}

	response.Success(c, testimonials)
}

// Create godoc
// @Summary Submit a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTestimonialRequest true "Review data"
// @Success 201 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /testimonials [post]
func (h *Handler) Create(c *gin.Context) {
	email := c.GetString("email")

	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	testimonial := &Testimonial{
		Email:    email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Rating:   req.Rating,
		Review:   req.Review,
	}

	if err := h.repo.Create(c.Request.Context(), testimonial); err != nil {
		response.DatabaseError(c, "Failed to save testimonial")
		return
	}

	response.Created(c, testimonial)
}
