package repository

import (
	"context"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/models"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AdminRepo interface {
	Create(ctx context.Context, email, passwordHash string) (*models.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	GetByID(ctx context.Context, id int64) (*models.AdminAccount, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*models.AdminAccount, error)
}

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, email, password, created_at, updated_at`

func (r *AdminRepository) Create(ctx context.Context, email, passwordHash string) (*models.AdminAccount, error) {
	logger.Log.Info("Создание администратора (repo)", zap.String("email", email))
	row := r.db.QueryRow(ctx, `
		INSERT INTO admin (email, password, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING `+adminColumns, email, passwordHash)
	return scanAdmin(row)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	logger.Log.Debug("Получение администратора по email (repo)", zap.String("email", email))
	row := r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin WHERE email = $1`, email)
	a, err := scanAdmin(row)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Log.Error("Ошибка получения администратора по email (repo)", zap.String("email", email), zap.Error(err))
	}
	return a, err
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminAccount, error) {
	logger.Log.Debug("Получение администратора по id (repo)", zap.Int64("id", id))
	row := r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin WHERE id = $1`, id)
	return scanAdmin(row)
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*models.AdminAccount, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE admin
		SET password = $2,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+adminColumns, id, passwordHash)
	a, err := scanAdmin(row)
	if err != nil {
		logger.Log.Error("Ошибка обновления пароля администратора (repo)", zap.Int64("id", id), zap.Error(err))
	}
	return a, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row rowScanner) (*models.AdminAccount, error) {
	var a models.AdminAccount
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapPgErr(err)
	}
	return &a, nil
}
