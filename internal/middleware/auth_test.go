package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitquest/api/internal/pkg/token"
	apperrors "github.com/fitquest/api/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	roles map[string]string
	calls int
}

func (f *fakeResolver) ResolveRole(_ context.Context, email string) (string, error) {
	f.calls++
	role, ok := f.roles[email]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return role, nil
}

func newTestRouter(issuer *token.Issuer, resolver RoleResolver, role string, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", Auth(issuer), func(c *gin.Context) {
		*hits++
		c.JSON(200, gin.H{"email": c.GetString("email")})
	})
	r.GET("/admin", RequireRole(issuer, resolver, role), func(c *gin.Context) {
		*hits++
		c.JSON(200, gin.H{"role": c.GetString("role")})
	})
	return r
}

func TestAuth_NoHeader(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	hits := 0
	r := newTestRouter(issuer, &fakeResolver{}, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	require.Equal(t, 0, hits, "handler must not run without a credential")
}

func TestAuth_InvalidToken(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	hits := 0
	r := newTestRouter(issuer, &fakeResolver{}, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	require.Equal(t, 0, hits)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := token.NewIssuer("secret", -time.Minute)
	tok, err := expired.Generate("user@fitquest.dev")
	require.NoError(t, err)

	issuer := token.NewIssuer("secret", time.Hour)
	hits := 0
	r := newTestRouter(issuer, &fakeResolver{}, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	require.Equal(t, 0, hits)
}

func TestAuth_ValidToken(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	tok, err := issuer.Generate("user@fitquest.dev")
	require.NoError(t, err)

	hits := 0
	r := newTestRouter(issuer, &fakeResolver{}, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, 1, hits)
}

func TestRequireRole_WrongRole(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	tok, err := issuer.Generate("member@fitquest.dev")
	require.NoError(t, err)

	resolver := &fakeResolver{roles: map[string]string{"member@fitquest.dev": "member"}}
	hits := 0
	r := newTestRouter(issuer, resolver, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	require.Equal(t, 0, hits, "handler must not run for a mismatched role")
	require.Equal(t, 1, resolver.calls)
	require.Contains(t, w.Body.String(), "Insufficient permissions",
		"the gate's error must be the only response written")
	require.NotContains(t, w.Body.String(), `"role"`)
}

func TestRequireRole_UnknownPrincipal(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	tok, err := issuer.Generate("ghost@fitquest.dev")
	require.NoError(t, err)

	resolver := &fakeResolver{roles: map[string]string{}}
	hits := 0
	r := newTestRouter(issuer, resolver, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	require.Equal(t, 0, hits)
}

func TestRequireRole_NoCredentialSkipsLookup(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	resolver := &fakeResolver{roles: map[string]string{}}
	hits := 0
	r := newTestRouter(issuer, resolver, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	require.Equal(t, 0, resolver.calls, "role lookup must not happen without a valid credential")
}

func TestRequireRole_MatchingRole(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	tok, err := issuer.Generate("admin@fitquest.dev")
	require.NoError(t, err)

	resolver := &fakeResolver{roles: map[string]string{"admin@fitquest.dev": "admin"}}
	hits := 0
	r := newTestRouter(issuer, resolver, "admin", &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, 1, hits)
}
