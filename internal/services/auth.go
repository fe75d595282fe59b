package services

import (
	"context"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/models"
	"enrolladmin/internal/repository"
	"enrolladmin/internal/utils"
	"errors"
	"time"

	"go.uber.org/zap"
)

type AuthService struct {
	admins    repository.AdminRepo
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(admins repository.AdminRepo, jwtSecret string, accessTTL time.Duration) *AuthService {
	return &AuthService{admins: admins, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

type LoginResult struct {
	User        models.AdminIdentity
	AccessToken string
	ExpiresAt   time.Time
}

// GetAccountByEmail ищет администратора по точному совпадению email.
func (s *AuthService) GetAccountByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения администратора", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *AuthService) GetProfile(ctx context.Context, id int64) (*models.AdminAccount, error) {
	a, err := s.admins.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return a, err
}

// Login не различает «нет такого пользователя» и «неверный пароль».
// Попытки не считаются и не ограничиваются.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа администратора", zap.String("email", email))

	a, err := s.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Вход: администратор не найден", zap.String("email", email))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(a.PasswordHash, password) {
		log.Warn("Вход: неверный пароль", zap.Int64("admin_id", a.ID))
		return nil, ErrInvalidCredentials
	}

	res := &LoginResult{User: a.Identity()}
	if s.jwtSecret != "" {
		token, exp, err := utils.GenerateAccessToken(s.jwtSecret, a.ID, a.Email, s.accessTTL)
		if err != nil {
			log.Error("Ошибка генерации access токена", zap.Int64("admin_id", a.ID), zap.Error(err))
			return nil, err
		}
		res.AccessToken, res.ExpiresAt = token, exp
	}

	log.Info("Успешный вход администратора", zap.Int64("admin_id", a.ID))
	return res, nil
}

// SeedAdmin создаёт администратора, если его ещё нет. Нужен только для DB_DRIVER=memory.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string, cost int) (*models.AdminAccount, error) {
	if a, err := s.admins.GetByEmail(ctx, email); err == nil {
		return a, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return s.admins.Create(ctx, email, hash)
}
