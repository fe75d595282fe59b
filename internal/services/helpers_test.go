package services

import (
	"context"
	"enrolladmin/internal/models"
	"enrolladmin/internal/repository/memory"
	"enrolladmin/internal/utils"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type sentOTP struct {
	to, code  string
	expiresAt time.Time
}

type fakeNotifier struct {
	sent []sentOTP
	err  error
}

func (f *fakeNotifier) SendPasswordResetOTP(_ context.Context, to, code string, expiresAt time.Time) error {
	f.sent = append(f.sent, sentOTP{to: to, code: code, expiresAt: expiresAt})
	return f.err
}

var errStoreDown = errors.New("connection refused")

// brokenAdmins отвечает ошибкой хранилища на любой вызов.
type brokenAdmins struct{}

func (brokenAdmins) Create(context.Context, string, string) (*models.AdminAccount, error) {
	return nil, errStoreDown
}
func (brokenAdmins) GetByEmail(context.Context, string) (*models.AdminAccount, error) {
	return nil, errStoreDown
}
func (brokenAdmins) GetByID(context.Context, int64) (*models.AdminAccount, error) {
	return nil, errStoreDown
}
func (brokenAdmins) UpdatePassword(context.Context, int64, string) (*models.AdminAccount, error) {
	return nil, errStoreDown
}

// flakyOTPs оборачивает память и ломает выбранные операции.
type flakyOTPs struct {
	*memory.OTPRepository
	findErr   error
	deleteErr error
}

func (f *flakyOTPs) FindActive(ctx context.Context, userID int64, code string, now time.Time) (*models.PasswordResetOTP, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.OTPRepository.FindActive(ctx, userID, code, now)
}

func (f *flakyOTPs) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.OTPRepository.Delete(ctx, id)
}

type fixture struct {
	clock    *fakeClock
	admins   *memory.AdminRepository
	otps     *memory.OTPRepository
	notifier *fakeNotifier
	auth     *AuthService
	password *PasswordService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := newClock()
	f := &fixture{
		clock:    clock,
		admins:   memory.NewAdminRepository(clock.Now),
		otps:     memory.NewOTPRepository(clock.Now),
		notifier: &fakeNotifier{},
	}
	f.auth = NewAuthService(f.admins, "test-secret", time.Minute)
	f.password = NewPasswordService(f.admins, f.otps, f.notifier, PasswordOptions{
		BcryptCost: bcrypt.MinCost,
		Now:        clock.Now,
	})
	return f
}

func (f *fixture) seedAdmin(t *testing.T, id int64, email, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	f.admins.Put(models.AdminAccount{ID: id, Email: email, PasswordHash: hash, CreatedAt: f.clock.Now(), UpdatedAt: f.clock.Now()})
}

// barrierOTPs задерживает каждого вызывающего после FindActive, пока
// все parties не найдут запись.
type barrierOTPs struct {
	*memory.OTPRepository
	found *sync.WaitGroup
}

func (b *barrierOTPs) FindActive(ctx context.Context, userID int64, code string, now time.Time) (*models.PasswordResetOTP, error) {
	rec, err := b.OTPRepository.FindActive(ctx, userID, code, now)
	b.found.Done()
	b.found.Wait()
	return rec, err
}
