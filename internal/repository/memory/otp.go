package memory

import (
	"context"
	"enrolladmin/internal/models"
	"enrolladmin/internal/repository"
	"errors"
	"fmt"
	"sync"
	"time"
)

type OTPRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.PasswordResetOTP
	now    func() time.Time
	admins *AdminRepository
}

func NewOTPRepository(now func() time.Time) *OTPRepository {
	if now == nil {
		now = time.Now
	}
	return &OTPRepository{rows: make(map[int64]models.PasswordResetOTP), now: now}
}

// WithAdmins включает проверку user_id по хранилищу администраторов,
// как внешний ключ password_reset_otps.user_id в Postgres.
func (r *OTPRepository) WithAdmins(admins *AdminRepository) *OTPRepository {
	r.admins = admins
	return r
}

func (r *OTPRepository) Create(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.PasswordResetOTP, error) {
	if r.admins != nil {
		if _, err := r.admins.GetByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: admin %d does not exist", repository.ErrNotFound, userID)
			}
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ts := r.now()
	o := models.PasswordResetOTP{
		ID:        r.nextID,
		UserID:    userID,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	r.rows[o.ID] = o
	return &o, nil
}

func (r *OTPRepository) FindActive(_ context.Context, userID int64, code string, now time.Time) (*models.PasswordResetOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *models.PasswordResetOTP
	for _, o := range r.rows {
		if o.UserID != userID || o.Code != code || !o.Usable(now) {
			continue
		}
		// при равном created_at побеждает более поздний id
		if best == nil || o.CreatedAt.After(best.CreatedAt) ||
			(o.CreatedAt.Equal(best.CreatedAt) && o.ID > best.ID) {
			match := o
			best = &match
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	return best, nil
}

func (r *OTPRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *OTPRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, o := range r.rows {
		if !o.Usable(now) {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

// Count - число строк (включая истёкшие), для тестов.
func (r *OTPRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// ForUser возвращает все строки пользователя, для тестов.
func (r *OTPRepository) ForUser(userID int64) []models.PasswordResetOTP {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.PasswordResetOTP
	for _, o := range r.rows {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
