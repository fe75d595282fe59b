package memory

import (
	"context"
	"testing"
	"time"

	"enrolladmin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestAdminRepository(t *testing.T) {
	clock := newClock()
	repo := NewAdminRepository(clock.Now)
	ctx := context.Background()

	a, err := repo.Create(ctx, "admin@example.com", "hash-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)

	_, err = repo.Create(ctx, "ADMIN@example.com", "hash-2")
	assert.Error(t, err, "emails are unique")

	got, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "noone@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	clock.Advance(time.Hour)
	updated, err := repo.UpdatePassword(ctx, a.ID, "hash-3")
	require.NoError(t, err)
	assert.Equal(t, "hash-3", updated.PasswordHash)
	assert.Equal(t, clock.Now(), updated.UpdatedAt)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)

	_, err = repo.UpdatePassword(ctx, 99, "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminRepositoryPutKeepsID(t *testing.T) {
	repo := NewAdminRepository(nil)
	repo.Put(adminWithID(7))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	next, err := repo.Create(context.Background(), "second@example.com", "h")
	require.NoError(t, err)
	assert.Equal(t, int64(8), next.ID)
}

func TestOTPRepositoryFindActive(t *testing.T) {
	clock := newClock()
	repo := NewOTPRepository(clock.Now)
	ctx := context.Background()

	first, err := repo.Create(ctx, 7, "111111", clock.Now().Add(10*time.Minute))
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := repo.Create(ctx, 7, "111111", clock.Now().Add(10*time.Minute))
	require.NoError(t, err)
	_, err = repo.Create(ctx, 8, "111111", clock.Now().Add(10*time.Minute))
	require.NoError(t, err)

	got, err := repo.FindActive(ctx, 7, "111111", clock.Now())
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID, "newest match wins")

	_, err = repo.FindActive(ctx, 7, "222222", clock.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// первый истекает раньше второго
	clock.Advance(9*time.Minute + 30*time.Second)
	got, err = repo.FindActive(ctx, 7, "111111", clock.Now())
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	require.NoError(t, repo.Delete(ctx, second.ID))
	assert.ErrorIs(t, repo.Delete(ctx, second.ID), repository.ErrNotFound, "second delete of the same row")
	_, err = repo.FindActive(ctx, 7, "111111", clock.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound, "first is already expired")
	assert.Equal(t, 2, repo.Count(), "expired rows are kept until reaped")
	assert.Len(t, repo.ForUser(7), 1)
	assert.Equal(t, first.ID, repo.ForUser(7)[0].ID)
}

func TestOTPRepositoryDeleteExpired(t *testing.T) {
	clock := newClock()
	repo := NewOTPRepository(clock.Now)
	ctx := context.Background()

	_, _ = repo.Create(ctx, 1, "123456", clock.Now().Add(time.Minute))
	_, _ = repo.Create(ctx, 1, "654321", clock.Now().Add(time.Hour))

	clock.Advance(2 * time.Minute)
	n, err := repo.DeleteExpired(ctx, clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, repo.Count())
}

func TestOTPRepositoryWithAdminsChecksUser(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	admins := NewAdminRepository(clock.Now)
	admins.Put(adminWithID(7))
	repo := NewOTPRepository(clock.Now).WithAdmins(admins)

	_, err := repo.Create(ctx, 7, "111111", clock.Now().Add(time.Minute))
	require.NoError(t, err)

	_, err = repo.Create(ctx, 8, "222222", clock.Now().Add(time.Minute))
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 1, repo.Count())
}
