package classes

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitquest/api/internal/config"
	apperrors "github.com/fitquest/api/pkg/errors"
)

type fakeClassStore struct {
	classes map[string]*Class
	failGet error
}

func (f *fakeClassStore) List(_ context.Context, search string, skip, limit int64) ([]Class, error) {
	out := []Class{}
	for _, c := range f.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClassStore) Count(_ context.Context, search string) (int64, error) {
	return int64(len(f.classes)), nil
}

func (f *fakeClassStore) GetByID(_ context.Context, id string) (*Class, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.ErrBadRequest
	}
	return f.classes[id], nil
}

func (f *fakeClassStore) TopByBookings(_ context.Context, limit int64) ([]Class, error) {
	return f.List(context.Background(), "", 0, limit)
}

type fakeTrainerFinder struct{}

func (fakeTrainerFinder) ForClass(_ context.Context, className string, limit int64) ([]TrainerCard, error) {
	return []TrainerCard{}, nil
}

func newClassTestRouter(store ClassStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{MaxPageSize: 100}
	handler := NewHandler(store, fakeTrainerFinder{}, cfg)

	r := gin.New()
	r.GET("/classes/:id", handler.Get)
	return r
}

func TestGet_InvalidID(t *testing.T) {
	store := &fakeClassStore{classes: map[string]*Class{}}
	r := newClassTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/classes/not-a-hex-id", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.Contains(t, w.Body.String(), "Invalid class ID")
}

func TestGet_StorageFailure(t *testing.T) {
	store := &fakeClassStore{failGet: errors.New("connection reset")}
	r := newClassTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/classes/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 500, w.Code)
	require.Contains(t, w.Body.String(), "Failed to load class")
}

func TestGet_Missing(t *testing.T) {
	store := &fakeClassStore{classes: map[string]*Class{}}
	r := newClassTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/classes/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
}

func TestGet_Found(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeClassStore{classes: map[string]*Class{
		id.Hex(): {ID: id, ClassName: "Spin", TotalBookings: 12},
	}}
	r := newClassTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/classes/"+id.Hex(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "Spin")
}
