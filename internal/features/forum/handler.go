package forum

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/pkg/pagination"
	"github.com/fitquest/api/internal/pkg/response"
	apperrors "github.com/fitquest/api/pkg/errors"
)

// AuthorLookup resolves display fields for the posting user so each
// post carries a snapshot of the author's name and role.
type AuthorLookup interface {
	AuthorInfo(ctx context.Context, email string) (name, role string, err error)
}

type Handler struct {
	repo    *Repository
	authors AuthorLookup
	cfg     *config.Config
}

func NewHandler(repo *Repository, authors AuthorLookup, cfg *config.Config) *Handler {
	return &Handler{repo: repo, authors: authors, cfg: cfg}
}

// List godoc
// @Summary List forum posts
// @Tags forum
// @Produce json
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size"
// @Success 200 {object} response.PaginatedResponse
// @Router /posts [get]
func (h *Handler) List(c *gin.Context) {
	page := pagination.FromQueryClamped(c.Query("page"), c.Query("size"), h.cfg.MaxPageSize)

	posts, err := h.repo.List(c.Request.Context(), page.Skip(), page.Limit())
	if err != nil {
		response.DatabaseError(c, "Failed to list posts")
		return
	}

	total, err := h.repo.Total(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to count posts")
		return
	}

	response.Paginated(c, posts, total, page.Page, page.Size)
}

// Total godoc
// @Summary Total post count
// @Tags forum
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /posts/total [get]
func (h *Handler) Total(c *gin.Context) {
	count, err := h.repo.Total(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to count posts")
		return
	}

	response.Success(c, gin.H{"count": count})
}

// Recent godoc
// @Summary Six most recent posts
// @Tags forum
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /posts/recent [get]
func (h *Handler) Recent(c *gin.Context) {
	posts, err := h.repo.Recent(c.Request.Context(), 6)
	if err != nil {
		response.DatabaseError(c, "Failed to load recent posts")
		return
	}

	response.Success(c, posts)
}

// Create godoc
// @Summary Create a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post data"
// @Success 201 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /posts [post]
func (h *Handler) Create(c *gin.Context) {
	email := c.GetString("email")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	name, role, err := h.authors.AuthorInfo(c.Request.Context(), email)
	if err != nil {
		response.DatabaseError(c, "Failed to resolve author")
		return
	}

	post := &Post{
		AuthorEmail: email,
		AuthorName:  name,
		AuthorRole:  role,
		Title:       req.Title,
		Content:     req.Content,
	}

	if err := h.repo.Create(c.Request.Context(), post); err != nil {
		response.DatabaseError(c, "Failed to create post")
		return
	}

	response.Created(c, post)
}

// Upvote godoc
// @Summary Upvote a post
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/upvote [patch]
func (h *Handler) Upvote(c *gin.Context) {
	err := h.repo.Upvote(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid post ID")
			return
		}
		response.DatabaseError(c, "Failed to record vote")
		return
	}

	response.Success(c, gin.H{"message": "vote recorded"})
}
