package bookings

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/pkg/pagination"
	"github.com/fitquest/api/internal/pkg/response"
	apperrors "github.com/fitquest/api/pkg/errors"
)

// PaymentStore is the slice of the repository the handlers drive,
// kept as an interface so the cancellation contract is testable
// without a live collection.
type PaymentStore interface {
	Create(ctx context.Context, payment *Payment) error
	ListByMember(ctx context.Context, email string, skip, limit int64) ([]Payment, error)
	CountByMember(ctx context.Context, email string) (int64, error)
	BookedTrainer(ctx context.Context, email string) (*Payment, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Handler struct {
	repo    PaymentStore
	gateway *Gateway
	cfg     *config.Config
}

func NewHandler(repo PaymentStore, gateway *Gateway, cfg *config.Config) *Handler {
	return &Handler{repo: repo, gateway: gateway, cfg: cfg}
}

// Create godoc
// @Summary Record a booking payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePaymentRequest true "Checkout data"
// @Success 201 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	email := c.GetString("email")

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.Price <= 0 {
		response.ValidationFailed(c, "price must be positive")
		return
	}

	payment := &Payment{
		MemberEmail: email,
		TrainerID:   req.TrainerID,
		TrainerName: req.TrainerName,
		Slot:        req.Slot,
		Price:       req.Price,
	}

	if err := h.repo.Create(c.Request.Context(), payment); err != nil {
		response.DatabaseError(c, "Failed to record payment")
		return
	}

	response.Created(c, payment)
}

// List godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size"
// @Success 200 {object} response.PaginatedResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /bookings [get]
func (h *Handler) List(c *gin.Context) {
	email := c.GetString("email")
	page := pagination.FromQueryClamped(c.Query("page"), c.Query("size"), h.cfg.MaxPageSize)

	payments, err := h.repo.ListByMember(c.Request.Context(), email, page.Skip(), page.Limit())
	if err != nil {
		response.DatabaseError(c, "Failed to list bookings")
		return
	}

	total, err := h.repo.CountByMember(c.Request.Context(), email)
	if err != nil {
		response.DatabaseError(c, "Failed to count bookings")
		return
	}

	response.Paginated(c, payments, total, page.Page, page.Size)
}

// BookedTrainer godoc
// @Summary The caller's booked trainer
// @Description Latest booking for the member, at most one result
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /bookings/trainer [get]
func (h *Handler) BookedTrainer(c *gin.Context) {
	email := c.GetString("email")

	payment, err := h.repo.BookedTrainer(c.Request.Context(), email)
	if err != nil {
		response.DatabaseError(c, "Failed to load booking")
		return
	}
	if payment == nil {
		response.NotFound(c, "No booking found")
		return
	}

	response.Success(c, payment)
}

// Delete godoc
// @Summary Cancel a booking
// @Description Deletes the payment record; responds with the deletion count
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /bookings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid payment ID")
			return
		}
		response.DatabaseError(c, "Failed to cancel booking")
		return
	}

	response.Success(c, gin.H{"deletedCount": deleted})
}

// PaymentIntent godoc
// @Summary Create a Stripe payment intent
// @Description Card-only intent for the amount in USD cents; returns the client secret
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentIntentRequest true "Amount"
// @Success 200 {object} PaymentIntentResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bookings/payment-intent [post]
func (h *Handler) PaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.Price <= 0 {
		response.ValidationFailed(c, "price must be positive")
		return
	}

	secret, err := h.gateway.CreateIntent(req.Price)
	if err != nil {
		response.InternalServerError(c, "Failed to create payment intent", "PAYMENT_GATEWAY")
		return
	}

	response.Success(c, PaymentIntentResponse{ClientSecret: secret})
}
