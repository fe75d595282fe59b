package repository

import (
	"context"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/models"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type OTPRepo interface {
	Create(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.PasswordResetOTP, error)
	// FindActive возвращает самый свежий неистёкший код пользователя, совпадающий с code.
	FindActive(ctx context.Context, userID int64, code string, now time.Time) (*models.PasswordResetOTP, error)
	// Delete удаляет код по id; ErrNotFound, если строки уже нет.
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type OTPRepository struct {
	db *pgxpool.Pool
}

func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{db: db}
}

const otpColumns = `id, user_id, otp, expires_at, created_at, updated_at`

func (r *OTPRepository) Create(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.PasswordResetOTP, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO password_reset_otps (user_id, otp, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING `+otpColumns, userID, code, expiresAt)

	var o models.PasswordResetOTP
	if err := row.Scan(&o.ID, &o.UserID, &o.Code, &o.ExpiresAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		logger.Log.Error("Ошибка сохранения OTP (repo)", zap.Int64("user_id", userID), zap.Error(err))
		return nil, mapPgErr(err)
	}
	return &o, nil
}

func (r *OTPRepository) FindActive(ctx context.Context, userID int64, code string, now time.Time) (*models.PasswordResetOTP, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+otpColumns+`
		FROM password_reset_otps
		WHERE user_id = $1
		  AND otp = $2
		  AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, code, now)

	var o models.PasswordResetOTP
	if err := row.Scan(&o.ID, &o.UserID, &o.Code, &o.ExpiresAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, mapPgErr(err)
	}
	return &o, nil
}

// Delete возвращает ErrNotFound, если строку уже удалил другой запрос.
func (r *OTPRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_otps WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления OTP (repo)", zap.Int64("id", id), zap.Error(err))
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OTPRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_otps WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return tag.RowsAffected(), nil
}
