package users

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/pkg/token"
	apperrors "github.com/fitquest/api/pkg/errors"
)

type fakeUserStore struct {
	users        map[string]*User
	inserts      int
	loginTouches int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *User) error {
	if _, ok := f.users[user.Email]; ok {
		return apperrors.ErrDuplicate
	}
	f.inserts++
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	return f.users[email], nil
}

func (f *fakeUserStore) TouchLogin(_ context.Context, email string) error {
	f.loginTouches++
	return nil
}

func (f *fakeUserStore) List(_ context.Context, skip, limit int64) ([]User, error) {
	out := make([]User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func newUserTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	issuer := token.NewIssuer("secret", time.Hour)
	cfg := &config.Config{MaxPageSize: 100}
	handler := NewHandler(store, issuer, cfg, nil)

	r := gin.New()
	r.POST("/users", handler.Register)
	r.POST("/auth/token", handler.SignIn)
	return r
}

func TestRegister_Duplicate(t *testing.T) {
	store := newFakeUserStore()
	store.users["jane@fitquest.dev"] = &User{Email: "jane@fitquest.dev", Name: "Jane Doe", Role: RoleMember}
	r := newUserTestRouter(store)

	body := `{"email":"jane@fitquest.dev","name":"Jane Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "user already exists")
	require.Contains(t, w.Body.String(), `"inserted":false`)
	require.Equal(t, 0, store.inserts, "a duplicate registration must not insert")
}

func TestRegister_New(t *testing.T) {
	store := newFakeUserStore()
	r := newUserTestRouter(store)

	body := `{"email":"jane@fitquest.dev","name":"Jane Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)
	require.Equal(t, 1, store.inserts)
	require.Equal(t, RoleMember, store.users["jane@fitquest.dev"].Role)
}

func TestRegister_InvalidEmail(t *testing.T) {
	store := newFakeUserStore()
	r := newUserTestRouter(store)

	body := `{"email":"not-an-email","name":"Jane Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 422, w.Code)
	require.Equal(t, 0, store.inserts)
}

func TestSignIn_ExistingUserTouchesLogin(t *testing.T) {
	store := newFakeUserStore()
	store.users["jane@fitquest.dev"] = &User{Email: "jane@fitquest.dev", Name: "Jane Doe", Role: RoleMember}
	r := newUserTestRouter(store)

	body := `{"email":"jane@fitquest.dev","name":"Jane Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"token"`)
	require.Equal(t, 0, store.inserts, "sign-in of an existing user must not insert")
	require.Equal(t, 1, store.loginTouches)
}

func TestSignIn_FirstSignInCreates(t *testing.T) {
	store := newFakeUserStore()
	r := newUserTestRouter(store)

	body := `{"email":"new@fitquest.dev","name":"New Member"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"token"`)
	require.Equal(t, 1, store.inserts)
	require.Equal(t, RoleMember, store.users["new@fitquest.dev"].Role)
}
