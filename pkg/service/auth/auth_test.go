package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byGoogleID map[string]*dto.UserRead
	failWith   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byGoogleID: make(map[string]*dto.UserRead)}
}

func (f *fakeUserRepo) Create(_ context.Context, create *dto.UserCreate) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.byGoogleID[create.GoogleID] = &dto.UserRead{
		ID:        create.ID,
		GoogleID:  create.GoogleID,
		Email:     create.Email,
		Name:      create.Name,
		Picture:   create.Picture,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (f *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.byGoogleID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (*dto.UserRead, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.byGoogleID[googleID], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve_CreatesOnFirstSight(t *testing.T) {
	repo := newFakeUserRepo()
	svc := New(repo, discardLogger())

	u, err := svc.Resolve(context.Background(), Assertion{
		GoogleID: "g-1",
		Email:    "test@example.com",
		Name:     "Test User",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "g-1", u.GoogleID)
	assert.Equal(t, "test@example.com", u.Email)
	assert.NotEqual(t, uuid.Nil, u.ID)
}

func TestResolve_ReturnsSameUserOnRepeatLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := New(repo, discardLogger())

	first, err := svc.Resolve(context.Background(), Assertion{
		GoogleID: "g-1",
		Email:    "test@example.com",
	})
	require.NoError(t, err)

	// Changed profile fields are ignored on repeat login; the stored
	// record wins and no duplicate row is created.
	second, err := svc.Resolve(context.Background(), Assertion{
		GoogleID: "g-1",
		Email:    "renamed@example.com",
		Name:     "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "test@example.com", second.Email)
	assert.Len(t, repo.byGoogleID, 1)
}

func TestResolve_EmptyGoogleID(t *testing.T) {
	svc := New(newFakeUserRepo(), discardLogger())

	_, err := svc.Resolve(context.Background(), Assertion{GoogleID: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResolve_StoreFailureAbortsLogin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failWith = errors.New("connection reset")
	svc := New(repo, discardLogger())

	_, err := svc.Resolve(context.Background(), Assertion{GoogleID: "g-1"})
	require.Error(t, err)
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := New(repo, discardLogger())

	created, err := svc.Resolve(context.Background(), Assertion{GoogleID: "g-1"})
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
