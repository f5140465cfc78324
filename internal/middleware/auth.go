package middleware

import (
	"context"
	"strings"

	"github.com/fitquest/api/internal/pkg/response"
	"github.com/fitquest/api/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// RoleResolver looks up a principal's stored role by email. The users
// repository implements it; middleware takes the interface to stay
// free of a feature-package import.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}

// authenticate verifies the bearer credential and stores the identity
// claim on the context. It aborts with 401 and reports !ok on any
// missing, malformed, or expired credential. It never advances the
// handler chain; that is the caller's decision.
func authenticate(c *gin.Context, issuer *token.Issuer) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "Authorization header required")
		c.Abort()
		return "", false
	}

	// Support both "Bearer <token>" (case-insensitive) and raw token in header
	fields := strings.Fields(authHeader)
	var tokenString string
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tokenString = fields[1]
	} else {
		tokenString = authHeader
	}

	claims, err := issuer.Validate(tokenString)
	if err != nil {
		response.Unauthorized(c, "Invalid token")
		c.Abort()
		return "", false
	}

	c.Set("email", claims.Email)
	return claims.Email, true
}

// Auth verifies the bearer credential before any handler runs.
// Missing, malformed, or expired credentials are rejected with 401.
func Auth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, issuer); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole composes credential verification with a per-request role
// lookup against storage. Any missing piece fails closed: no token or
// a bad token is 401, a lookup miss or role mismatch is 403. The
// guarded handler runs only after both checks pass.
func RequireRole(issuer *token.Issuer, resolver RoleResolver, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := authenticate(c, issuer)
		if !ok {
			return
		}

		resolved, err := resolver.ResolveRole(c.Request.Context(), email)
		if err != nil || resolved != role {
			response.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Set("role", resolved)
		c.Next()
	}
}
