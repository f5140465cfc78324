package trainers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/fitquest/api/pkg/errors"
)

type fakeTrainerStore struct {
	byID map[string]*Trainer
}

func newFakeTrainerStore(trainers ...*Trainer) *fakeTrainerStore {
	s := &fakeTrainerStore{byID: map[string]*Trainer{}}
	for _, t := range trainers {
		s.byID[t.Email] = t // keyed by email for test convenience, ids are opaque here
	}
	return s
}

func (s *fakeTrainerStore) GetByID(_ context.Context, id string) (*Trainer, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTrainerStore) SetLifecycle(_ context.Context, id, role, status string, classes []string) error {
	t, ok := s.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	t.Role = role
	t.Status = status
	if classes != nil {
		t.Classes = classes
	}
	return nil
}

func (s *fakeTrainerStore) Reject(_ context.Context, id, feedback string) error {
	t, ok := s.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	t.Status = StatusRejected
	t.Feedback = feedback
	return nil
}

func (s *fakeTrainerStore) UpdateSlots(_ context.Context, email string, days []string, slots int, classes []string) error {
	for _, t := range s.byID {
		if t.Email == email {
			t.AvailableDays = days
			t.SlotsAvailable = slots
			if classes != nil {
				t.Classes = classes
			}
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeUserStore struct {
	roles   map[string]string
	failSet error
}

func (s *fakeUserStore) SetRole(_ context.Context, email, role string) error {
	if s.failSet != nil {
		return s.failSet
	}
	s.roles[email] = role
	return nil
}

func pendingApplication(email string) *Trainer {
	return &Trainer{
		Email:    email,
		FullName: "Alex Carter",
		Role:     RoleMember,
		Status:   StatusPending,
		Classes:  []string{"Power Yoga"},
	}
}

func TestApprove_PromotesBothRecords(t *testing.T) {
	app := pendingApplication("alex@fitquest.dev")
	store := newFakeTrainerStore(app)
	users := &fakeUserStore{roles: map[string]string{"alex@fitquest.dev": "member"}}
	svc := NewService(store, users, nil)

	promoted, err := svc.Approve(context.Background(), "alex@fitquest.dev", []string{"Power Yoga", "HIIT"})
	require.NoError(t, err)
	require.Equal(t, RoleTrainer, promoted.Role)
	require.Equal(t, StatusApproved, promoted.Status)
	require.Equal(t, []string{"Power Yoga", "HIIT"}, promoted.Classes)

	require.Equal(t, RoleTrainer, store.byID["alex@fitquest.dev"].Role)
	require.Equal(t, StatusApproved, store.byID["alex@fitquest.dev"].Status)
	require.Equal(t, "trainer", users.roles["alex@fitquest.dev"])
}

func TestApprove_MissingApplication(t *testing.T) {
	store := newFakeTrainerStore()
	users := &fakeUserStore{roles: map[string]string{}}
	svc := NewService(store, users, nil)

	_, err := svc.Approve(context.Background(), "ghost@fitquest.dev", nil)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Empty(t, users.roles, "no user write may happen for a missing application")
}

func TestApprove_CompensatesOnUserWriteFailure(t *testing.T) {
	app := pendingApplication("alex@fitquest.dev")
	store := newFakeTrainerStore(app)
	users := &fakeUserStore{roles: map[string]string{}, failSet: errors.New("connection reset")}
	svc := NewService(store, users, nil)

	_, err := svc.Approve(context.Background(), "alex@fitquest.dev", nil)
	require.Error(t, err)

	// The trainer record must be reverted so the collections agree.
	got := store.byID["alex@fitquest.dev"]
	require.Equal(t, RoleMember, got.Role)
	require.Equal(t, StatusPending, got.Status)
}

func TestApproveThenDemote_RoundTrip(t *testing.T) {
	app := pendingApplication("alex@fitquest.dev")
	store := newFakeTrainerStore(app)
	users := &fakeUserStore{roles: map[string]string{"alex@fitquest.dev": "member"}}
	svc := NewService(store, users, nil)

	_, err := svc.Approve(context.Background(), "alex@fitquest.dev", nil)
	require.NoError(t, err)

	demoted, err := svc.Demote(context.Background(), "alex@fitquest.dev")
	require.NoError(t, err)
	require.Equal(t, RoleMember, demoted.Role)

	require.Equal(t, RoleMember, store.byID["alex@fitquest.dev"].Role)
	require.Equal(t, "member", users.roles["alex@fitquest.dev"])
}

func TestReject_SetsStatusAndFeedback(t *testing.T) {
	app := pendingApplication("alex@fitquest.dev")
	store := newFakeTrainerStore(app)
	svc := NewService(store, &fakeUserStore{roles: map[string]string{}}, nil)

	err := svc.Reject(context.Background(), "alex@fitquest.dev", "Needs more certifications")
	require.NoError(t, err)

	got := store.byID["alex@fitquest.dev"]
	require.Equal(t, StatusRejected, got.Status)
	require.Equal(t, "Needs more certifications", got.Feedback)
	require.Equal(t, RoleMember, got.Role, "rejection leaves the role untouched")
}

func TestReject_MissingApplicationNeverCreates(t *testing.T) {
	store := newFakeTrainerStore()
	svc := NewService(store, &fakeUserStore{roles: map[string]string{}}, nil)

	err := svc.Reject(context.Background(), "ghost@fitquest.dev", "nope")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Empty(t, store.byID, "reject must not create an orphaned record")
}

func TestUpdateSlots_ReplacesAvailability(t *testing.T) {
	app := pendingApplication("alex@fitquest.dev")
	app.Status = StatusApproved
	app.Role = RoleTrainer
	store := newFakeTrainerStore(app)
	svc := NewService(store, &fakeUserStore{roles: map[string]string{}}, nil)

	err := svc.UpdateSlots(context.Background(), "alex@fitquest.dev", &UpdateSlotsRequest{
		AvailableDays:  []string{"Mon", "Wed"},
		SlotsAvailable: 4,
	})
	require.NoError(t, err)

	got := store.byID["alex@fitquest.dev"]
	require.Equal(t, []string{"Mon", "Wed"}, got.AvailableDays)
	require.Equal(t, 4, got.SlotsAvailable)
	require.Equal(t, []string{"Power Yoga"}, got.Classes, "classes stay when absent from the request")
}
