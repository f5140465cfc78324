package trainers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/pkg/pagination"
	"github.com/fitquest/api/internal/pkg/response"
	apperrors "github.com/fitquest/api/pkg/errors"
)

// Store is the slice of the repository the handlers read and write
// directly; lifecycle transitions go through the Service instead.
type Store interface {
	Create(ctx context.Context, trainer *Trainer) error
	GetByID(ctx context.Context, id string) (*Trainer, error)
	List(ctx context.Context, skip, limit int64) ([]Trainer, error)
	Count(ctx context.Context) (int64, error)
	Featured(ctx context.Context, limit int64) ([]Trainer, error)
	Applications(ctx context.Context, skip, limit int64) ([]Trainer, error)
	CountApplications(ctx context.Context) (int64, error)
}

type Handler struct {
	repo    Store
	service *Service
	cfg     *config.Config
}

func NewHandler(repo Store, service *Service, cfg *config.Config) *Handler {
	return &Handler{repo: repo, service: service, cfg: cfg}
}

// List godoc
// @Summary List trainers
// @Description Paginated listing in natural storage order
// @Tags trainers
// @Produce json
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size"
// @Success 200 {object} response.PaginatedResponse
// @Router /trainers [get]
func (h *Handler) List(c *gin.Context) {
	page := pagination.FromQueryClamped(c.Query("page"), c.Query("size"), h.cfg.MaxPageSize)

	trainers, err := h.repo.List(c.Request.Context(), page.Skip(), page.Limit())
	if err != nil {
		response.DatabaseError(c, "Failed to list trainers")
		return
	}

	total, err := h.repo.Count(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to count trainers")
		return
	}

	response.Paginated(c, trainers, total, page.Page, page.Size)
}

// Get godoc
// @Summary Get a trainer by ID
// @Tags trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /trainers/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	trainer, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid trainer ID")
			return
		}
		response.DatabaseError(c, "Failed to load trainer")
		return
	}
	if trainer == nil {
		response.NotFound(c, "Trainer not found")
		return
	}

	response.Success(c, trainer)
}

// Featured godoc
// @Summary Most experienced trainers
// @Description Top 3 approved trainers by years of experience
// @Tags trainers
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /trainers/featured [get]
func (h *Handler) Featured(c *gin.Context) {
	trainers, err := h.repo.Featured(c.Request.Context(), 3)
	if err != nil {
		response.DatabaseError(c, "Failed to load featured trainers")
		return
	}

	response.Success(c, trainers)
}

// Apply godoc
// @Summary Apply to become a trainer
// @Description Creates a pending application for the authenticated member
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApplyRequest true "Application data"
// @Success 201 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /trainers/apply [post]
func (h *Handler) Apply(c *gin.Context) {
	email := c.GetString("email")

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateApply(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	trainer := &Trainer{
		Email:             email,
		FullName:          req.FullName,
		ProfileImage:      req.ProfileImage,
		YearsOfExperience: req.YearsOfExperience,
		Classes:           req.Classes,
		AvailableDays:     req.AvailableDays,
		SlotsAvailable:    req.SlotsAvailable,
	}

	if err := h.repo.Create(c.Request.Context(), trainer); err != nil {
		response.DatabaseError(c, "Failed to submit application")
		return
	}

	response.Created(c, trainer)
}

// Applications godoc
// @Summary List pending applications
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size"
// @Success 200 {object} response.PaginatedResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /trainers/applications [get]
func (h *Handler) Applications(c *gin.Context) {
	page := pagination.FromQueryClamped(c.Query("page"), c.Query("size"), h.cfg.MaxPageSize)

	apps, err := h.repo.Applications(c.Request.Context(), page.Skip(), page.Limit())
	if err != nil {
		response.DatabaseError(c, "Failed to list applications")
		return
	}

	total, err := h.repo.CountApplications(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to count applications")
		return
	}

	response.Paginated(c, apps, total, page.Page, page.Size)
}

// Approve godoc
// @Summary Approve a trainer application
// @Description Promotes the applicant: trainer record and user role change together
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body ApproveRequest false "Optional class assignment override"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /trainers/{id}/approve [patch]
func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindJSONError(c, err)
			return
		}
	}

	trainer, err := h.service.Approve(c.Request.Context(), c.Param("id"), req.Classes)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Application not found")
			return
		}
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid trainer ID")
			return
		}
		response.DatabaseError(c, "Failed to approve application")
		return
	}

	response.Success(c, trainer)
}

// Reject godoc
// @Summary Reject a trainer application
// @Description Sets status=rejected and records feedback on an existing application
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body RejectRequest true "Rejection feedback"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /trainers/{id}/reject [patch]
func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	err := h.service.Reject(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Application not found")
			return
		}
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid trainer ID")
			return
		}
		response.DatabaseError(c, "Failed to reject application")
		return
	}

	response.Success(c, gin.H{"message": "application rejected"})
}

// Demote godoc
// @Summary Demote a trainer back to member
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /trainers/{id}/demote [patch]
func (h *Handler) Demote(c *gin.Context) {
	trainer, err := h.service.Demote(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Trainer not found")
			return
		}
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid trainer ID")
			return
		}
		response.DatabaseError(c, "Failed to demote trainer")
		return
	}

	response.Success(c, trainer)
}

// UpdateSlots godoc
// @Summary Update own availability
// @Description Trainer self-service replace of availableDays/slotsAvailable/classes
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSlotsRequest true "Availability"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /trainers/slots [patch]
func (h *Handler) UpdateSlots(c *gin.Context) {
	email := c.GetString("email")

	var req UpdateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateSlots(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if err := h.service.UpdateSlots(c.Request.Context(), email, &req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Trainer record not found")
			return
		}
		response.DatabaseError(c, "Failed to update availability")
		return
	}

	response.Success(c, gin.H{"message": "availability updated"})
}
