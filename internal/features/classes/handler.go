package classes

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/pkg/pagination"
	"github.com/fitquest/api/internal/pkg/response"
	apperrors "github.com/fitquest/api/pkg/errors"
)

// TrainerFinder resolves the trainers assigned to a class through the
// trainer record's classes array. The trainers repository backs it via
// an adapter in the route table.
type TrainerFinder interface {
	ForClass(ctx context.Context, className string, limit int64) ([]TrainerCard, error)
}

const trainersPerFeaturedClass = 5

// ClassStore is the slice of the repository the handlers drive.
type ClassStore interface {
	List(ctx context.Context, search string, skip, limit int64) ([]Class, error)
	Count(ctx context.Context, search string) (int64, error)
	GetByID(ctx context.Context, id string) (*Class, error)
	TopByBookings(ctx context.Context, limit int64) ([]Class, error)
}

type Handler struct {
	repo     ClassStore
	trainers TrainerFinder
	cfg      *config.Config
}

func NewHandler(repo ClassStore, trainers TrainerFinder, cfg *config.Config) *Handler {
	return &Handler{repo: repo, trainers: trainers, cfg: cfg}
}

// List godoc
// @Summary List classes
// @Description Paginated listing with optional case-insensitive name search
// @Tags classes
// @Produce json
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size"
// @Param search query string false "Class name substring"
// @Success 200 {object} response.PaginatedResponse
// @Router /classes [get]
func (h *Handler) List(c *gin.Context) {
	page := pagination.FromQueryClamped(c.Query("page"), c.Query("size"), h.cfg.MaxPageSize)
	search := c.Query("search")

	classes, err := h.repo.List(c.Request.Context(), search, page.Skip(), page.Limit())
	if err != nil {
		response.DatabaseError(c, "Failed to list classes")
		return
	}

	total, err := h.repo.Count(c.Request.Context(), search)
	if err != nil {
		response.DatabaseError(c, "Failed to count classes")
		return
	}

	response.Paginated(c, classes, total, page.Page, page.Size)
}

// Get godoc
// @Summary Get a class with its trainers
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /classes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	class, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid class ID")
			return
		}
		response.DatabaseError(c, "Failed to load class")
		return
	}
	if class == nil {
		response.NotFound(c, "Class not found")
		return
	}

	trainerCards, err := h.trainers.ForClass(c.Request.Context(), class.ClassName, trainersPerFeaturedClass)
	if err != nil {
		response.DatabaseError(c, "Failed to load class trainers")
		return
	}

	response.Success(c, FeaturedClass{Class: *class, Trainers: trainerCards})
}

// Featured godoc
// @Summary Top classes by bookings
// @Description The 6 most-booked classes, each with up to 5 assigned trainers
// @Tags classes
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /classes/featured [get]
func (h *Handler) Featured(c *gin.Context) {
	top, err := h.repo.TopByBookings(c.Request.Context(), 6)
	if err != nil {
		response.DatabaseError(c, "Failed to load featured classes")
		return
	}

	// One follow-up query per ranked class; bounded at 6x5 documents.
	featured := make([]FeaturedClass, 0, len(top))
	for _, class := range top {
		trainerCards, err := h.trainers.ForClass(c.Request.Context(), class.ClassName, trainersPerFeaturedClass)
		if err != nil {
			response.DatabaseError(c, "Failed to load featured classes")
			return
		}
		featured = append(featured, FeaturedClass{Class: class, Trainers: trainerCards})
	}

	response.Success(c, featured)
}
