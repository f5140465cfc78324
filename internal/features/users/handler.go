package users

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/pkg/pagination"
	"github.com/fitquest/api/internal/pkg/response"
	"github.com/fitquest/api/internal/pkg/token"
	"github.com/fitquest/api/internal/pkg/validator"
	apperrors "github.com/fitquest/api/pkg/errors"
)

// Store is the slice of the repository the handlers drive. An
// interface so the sign-in and registration flows can be tested
// against a fake.
type Store interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	TouchLogin(ctx context.Context, email string) error
	List(ctx context.Context, skip, limit int64) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	repo     Store
	issuer   *token.Issuer
	cfg      *config.Config
	firebase *auth.Client // nil when no service account is configured
}

func NewHandler(repo Store, issuer *token.Issuer, cfg *config.Config, firebase *auth.Client) *Handler {
	return &Handler{repo: repo, issuer: issuer, cfg: cfg, firebase: firebase}
}

// SignIn godoc
// @Summary Sign in and obtain a session token
// @Description Verifies the caller's ID token when configured, upserts the user record, and issues a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Sign-in payload"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/token [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	// When verification is configured the verified identity wins over
	// whatever the client claims about itself.
	if req.IDToken != "" {
		verified, err := h.verifyIDToken(c, req.IDToken)
		if err != nil {
			response.AuthenticationError(c, "Identity verification failed")
			return
		}
		if verified != nil {
			req.Email = verified.Email
			if verified.Name != "" {
				req.Name = verified.Name
			}
			if verified.Picture != "" {
				req.PhotoURL = verified.Picture
			}
		}
	}

	if !validator.IsValidEmail(req.Email) {
		response.ValidationFailed(c, "A valid email is required")
		return
	}

	user := &User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     RoleMember,
	}

	err := h.repo.Create(c.Request.Context(), user)
	switch {
	case err == nil:
		// first sign-in, record created
	case errors.Is(err, apperrors.ErrDuplicate):
		if err := h.repo.TouchLogin(c.Request.Context(), req.Email); err != nil {
			response.DatabaseError(c, "Failed to record login")
			return
		}
		user, err = h.repo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil || user == nil {
			response.DatabaseError(c, "Failed to load user")
			return
		}
	default:
		response.DatabaseError(c, "Failed to create user")
		return
	}

	jwt, err := h.issuer.Generate(user.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{Token: jwt, User: user})
}

func (h *Handler) verifyIDToken(c *gin.Context, raw string) (*GoogleUser, error) {
	if h.firebase != nil {
		return VerifyFirebaseToken(c.Request.Context(), h.firebase, raw)
	}
	if h.cfg.GoogleClientID != "" {
		return VerifyGoogleToken(c.Request.Context(), raw, h.cfg.GoogleClientID)
	}
	// Verification not configured (dev mode): fall through to the
	// client-supplied identity.
	return nil, nil
}

// Register godoc
// @Summary Register a user record
// @Description Creates the user on first sign-in; a duplicate registration is a no-op returning an already-exists sentinel
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User data"
// @Success 200 {object} response.SuccessResponse
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user := &User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     RoleMember,
	}

	err := h.repo.Create(c.Request.Context(), user)
	if errors.Is(err, apperrors.ErrDuplicate) {
		response.Success(c, gin.H{"message": "user already exists", "inserted": false})
		return
	}
	if err != nil {
		response.DatabaseError(c, "Failed to create user")
		return
	}

	response.Created(c, user)
}

// List godoc
// @Summary List users
// @Description Admin-only paginated listing of all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size"
// @Success 200 {object} response.PaginatedResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	page := pagination.FromQueryClamped(c.Query("page"), c.Query("size"), h.cfg.MaxPageSize)

	list, err := h.repo.List(c.Request.Context(), page.Skip(), page.Limit())
	if err != nil {
		response.DatabaseError(c, "Failed to list users")
		return
	}

	total, err := h.repo.Count(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to count users")
		return
	}

	response.Paginated(c, list, total, page.Page, page.Size)
}

// GetMe godoc
// @Summary Get the authenticated user's record
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	email := c.GetString("email")

	user, err := h.repo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		response.DatabaseError(c, "Failed to load user")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}
