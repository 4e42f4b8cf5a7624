package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/mock"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionCache(t *testing.T) (ClientSessionCache, *mock.MockLocalSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalSessionRepository(ctrl)
	return NewClientSessionCache(repo, logger.Nop()), repo
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientSessionCache_Restore_Active(t *testing.T) {
	cache, repo := newTestSessionCache(t)
	ctx := context.Background()

	stored := models.Session{Active: true, Identity: "ann@example.com", WorkingData: "draft", Token: "tok"}
	repo.EXPECT().Load(ctx).Return(stored, nil)

	session, err := cache.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestClientSessionCache_Restore_NothingStored(t *testing.T) {
	cache, repo := newTestSessionCache(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(models.Session{}, nil)

	session, err := cache.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, session.Active)
}

func TestClientSessionCache_Restore_Error(t *testing.T) {
	cache, repo := newTestSessionCache(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(models.Session{}, store.ErrInvalidSession)

	_, err := cache.Restore(ctx)
	assert.ErrorIs(t, err, store.ErrInvalidSession)
}

// ── Begin ────────────────────────────────────────────────────────────────────

func TestClientSessionCache_Begin_SavesWholeRecord(t *testing.T) {
	cache, repo := newTestSessionCache(t)
	ctx := context.Background()

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
		assert.True(t, s.Active)
		assert.Equal(t, "ann@example.com", s.Identity)
		assert.Equal(t, "server copy", s.WorkingData)
		assert.Equal(t, "tok", s.Token)
		return nil
	})

	require.NoError(t, cache.Begin(ctx, "ann@example.com", "server copy", "tok"))
}

func TestClientSessionCache_Begin_EmptyIdentity(t *testing.T) {
	cache, _ := newTestSessionCache(t)

	err := cache.Begin(context.Background(), "", "data", "tok")
	assert.ErrorIs(t, err, store.ErrInvalidSession)
}

// ── UpdateWorkingData / SetToken / End ───────────────────────────────────────

func TestClientSessionCache_UpdateWorkingData(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "success"},
		{name: "no active session", repoErr: store.ErrNoActiveSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, repo := newTestSessionCache(t)
			ctx := context.Background()

			repo.EXPECT().UpdateWorkingData(ctx, "edited").Return(tt.repoErr)

			err := cache.UpdateWorkingData(ctx, "edited")
			if tt.repoErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestClientSessionCache_SetToken(t *testing.T) {
	cache, repo := newTestSessionCache(t)
	ctx := context.Background()

	repo.EXPECT().UpdateToken(ctx, "fresh").Return(nil)

	require.NoError(t, cache.SetToken(ctx, "fresh"))
}

func TestClientSessionCache_End(t *testing.T) {
	cache, repo := newTestSessionCache(t)
	ctx := context.Background()

	repo.EXPECT().Clear(ctx).Return(nil)
	require.NoError(t, cache.End(ctx))

	diskErr := errors.New("disk full")
	repo.EXPECT().Clear(ctx).Return(diskErr)
	assert.ErrorIs(t, cache.End(ctx), diskErr)
}
