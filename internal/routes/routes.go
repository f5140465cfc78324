package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitquest/api/internal/config"
	"github.com/fitquest/api/internal/features/bookings"
	"github.com/fitquest/api/internal/features/classes"
	"github.com/fitquest/api/internal/features/forum"
	"github.com/fitquest/api/internal/features/media"
	"github.com/fitquest/api/internal/features/pricing"
	"github.com/fitquest/api/internal/features/subscribers"
	"github.com/fitquest/api/internal/features/testimonials"
	"github.com/fitquest/api/internal/features/trainers"
	"github.com/fitquest/api/internal/features/users"
	"github.com/fitquest/api/internal/pkg/token"
	apperrors "github.com/fitquest/api/pkg/errors"
)

// classTrainerFinder adapts trainers.Repository to classes.TrainerFinder
type classTrainerFinder struct {
	repo *trainers.Repository
}

func (f *classTrainerFinder) ForClass(ctx context.Context, className string, limit int64) ([]classes.TrainerCard, error) {
	found, err := f.repo.ForClass(ctx, className, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]classes.TrainerCard, 0, len(found))
	for _, t := range found {
		cards = append(cards, classes.TrainerCard{
			ID:           t.ID,
			Email:        t.Email,
			FullName:     t.FullName,
			ProfileImage: t.ProfileImage,
		})
	}
	return cards, nil
}

// forumAuthorLookup adapts users.Repository to forum.AuthorLookup
type forumAuthorLookup struct {
	repo *users.Repository
}

func (l *forumAuthorLookup) AuthorInfo(ctx context.Context, email string) (string, string, error) {
	user, err := l.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", apperrors.ErrNotFound
	}
	return user.Name, user.Role, nil
}

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	// API v1 group
	api := router.Group("/api/v1")

	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	// The users repository is the authority on roles: it backs the
	// role-gated middleware and the lifecycle transitions directly.
	usersRepo := users.RegisterRoutes(api, db, cfg, issuer)
	trainersRepo := trainers.RegisterRoutes(api, db, cfg, issuer, usersRepo, usersRepo)

	classes.RegisterRoutes(api, db, cfg, &classTrainerFinder{repo: trainersRepo})
	bookings.RegisterRoutes(api, db, cfg, issuer)
	forum.RegisterRoutes(api, db, cfg, issuer, &forumAuthorLookup{repo: usersRepo})
	testimonials.RegisterRoutes(api, db, issuer)
	subscribers.RegisterRoutes(api, db, issuer, usersRepo)
	pricing.RegisterRoutes(api, db)
	media.RegisterRoutes(api, cfg, issuer, usersRepo)
}
