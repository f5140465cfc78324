package trainers

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/fitquest/api/pkg/errors"
)

// TrainerStore is the slice of the repository the transition engine
// drives. Kept as an interface so tests can run against a fake.
type TrainerStore interface {
	GetByID(ctx context.Context, id string) (*Trainer, error)
	SetLifecycle(ctx context.Context, id, role, status string, classes []string) error
	Reject(ctx context.Context, id, feedback string) error
	UpdateSlots(ctx context.Context, email string, days []string, slots int, classes []string) error
}

// UserRoleStore updates the authoritative role in the users
// collection. Implemented by the users repository; an interface here
// avoids a cross-feature import.
type UserRoleStore interface {
	SetRole(ctx context.Context, email, role string) error
}

// Service is the lifecycle transition engine. Role transitions touch
// two collections; both records must change together or not at all.
// When the deployment supports multi-document transactions the writes
// share one, otherwise they run sequentially with a compensating
// revert of the trainer record if the user-side write fails.
type Service struct {
	trainers TrainerStore
	users    UserRoleStore
	client   *mongo.Client // nil disables the transactional path
}

func NewService(trainers TrainerStore, users UserRoleStore, client *mongo.Client) *Service {
	return &Service{trainers: trainers, users: users, client: client}
}

// Approve promotes a pending application: the trainer record gets
// role=trainer/status=approved (plus the class assignment) and the
// user record's role is updated to match.
func (s *Service) Approve(ctx context.Context, id string, classes []string) (*Trainer, error) {
	trainer, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, apperrors.ErrNotFound
	}

	if classes == nil {
		classes = trainer.Classes
	}
	prevRole, prevStatus := trainer.Role, trainer.Status

	err = s.transition(ctx,
		func(ctx context.Context) error {
			return s.trainers.SetLifecycle(ctx, id, RoleTrainer, StatusApproved, classes)
		},
		func(ctx context.Context) error {
			return s.users.SetRole(ctx, trainer.Email, RoleTrainer)
		},
		func(ctx context.Context) error {
			return s.trainers.SetLifecycle(ctx, id, prevRole, prevStatus, trainer.Classes)
		},
	)
	if err != nil {
		return nil, err
	}

	trainer.Role = RoleTrainer
	trainer.Status = StatusApproved
	trainer.Classes = classes
	return trainer, nil
}

// Reject marks an existing application rejected with feedback. It
// never creates a record and touches only the trainer collection, so
// no coordination with the users side is needed.
func (s *Service) Reject(ctx context.Context, id, feedback string) error {
	return s.trainers.Reject(ctx, id, feedback)
}

// Demote moves a trainer back to member on both records.
func (s *Service) Demote(ctx context.Context, id string) (*Trainer, error) {
	trainer, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, apperrors.ErrNotFound
	}

	prevRole := trainer.Role

	err = s.transition(ctx,
		func(ctx context.Context) error {
			return s.trainers.SetLifecycle(ctx, id, RoleMember, trainer.Status, nil)
		},
		func(ctx context.Context) error {
			return s.users.SetRole(ctx, trainer.Email, RoleMember)
		},
		func(ctx context.Context) error {
			return s.trainers.SetLifecycle(ctx, id, prevRole, trainer.Status, nil)
		},
	)
	if err != nil {
		return nil, err
	}

	trainer.Role = RoleMember
	return trainer, nil
}

// UpdateSlots is trainer self-service on the trainer's own record; it
// is not a role transition and needs no cross-collection coordination.
func (s *Service) UpdateSlots(ctx context.Context, email string, req *UpdateSlotsRequest) error {
	return s.trainers.UpdateSlots(ctx, email, req.AvailableDays, req.SlotsAvailable, req.Classes)
}

// transition runs step1 then step2. Inside a session when available;
// otherwise sequential, with undo1 reverting step1 when step2 fails so
// the collections never disagree after a completed call.
func (s *Service) transition(ctx context.Context, step1, step2, undo1 func(context.Context) error) error {
	if s.client != nil {
		session, err := s.client.StartSession()
		if err == nil {
			defer session.EndSession(ctx)
			_, txErr := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
				if err := step1(sc); err != nil {
					return nil, err
				}
				return nil, step2(sc)
			})
			if txErr == nil || !transactionsUnsupported(txErr) {
				return txErr
			}
			// Standalone deployment: fall through to the compensating path.
		}
	}

	if err := step1(ctx); err != nil {
		return err
	}
	if err := step2(ctx); err != nil {
		if undoErr := undo1(ctx); undoErr != nil {
			return fmt.Errorf("transition failed: %v (compensation failed: %v)", err, undoErr)
		}
		return err
	}
	return nil
}

// transactionsUnsupported reports whether the error means the server
// cannot run multi-document transactions (standalone, no replica set).
func transactionsUnsupported(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "replica set") ||
		strings.Contains(msg, "Transaction numbers") ||
		strings.Contains(msg, "transactions are not supported")
}
