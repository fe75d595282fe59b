package services

import (
	"context"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/models"
	"enrolladmin/internal/repository"
	"enrolladmin/internal/utils"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const DefaultOTPTTL = 10 * time.Minute

// OTPNotifier доставляет код пользователю. Сервис только сохраняет код.
type OTPNotifier interface {
	SendPasswordResetOTP(ctx context.Context, to, code string, expiresAt time.Time) error
}

type PasswordOptions struct {
	OTPTTL     time.Duration
	BcryptCost int
	Now        func() time.Time
}

// PasswordService - шаги сброса пароля. Каждый метод - один независимый шаг,
// последовательность задаёт UI.
type PasswordService struct {
	admins   repository.AdminRepo
	otps     repository.OTPRepo
	notifier OTPNotifier
	otpTTL   time.Duration
	cost     int
	now      func() time.Time
}

func NewPasswordService(admins repository.AdminRepo, otps repository.OTPRepo, notifier OTPNotifier, opts PasswordOptions) *PasswordService {
	if opts.OTPTTL <= 0 {
		opts.OTPTTL = DefaultOTPTTL
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = utils.DefaultBcryptCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &PasswordService{
		admins:   admins,
		otps:     otps,
		notifier: notifier,
		otpTTL:   opts.OTPTTL,
		cost:     opts.BcryptCost,
		now:      opts.Now,
	}
}

// RequestReset генерирует код и сохраняет его. Для неизвестного email
// возвращает ErrNotFound и ничего не пишет. Старые коды остаются действительными.
func (s *PasswordService) RequestReset(ctx context.Context, email string) (*models.OTPIssued, error) {
	log := logger.WithCtx(ctx)
	log.Info("Запрос на сброс пароля", zap.String("email", email))

	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Сброс пароля: администратор не найден", zap.String("email", email))
			return nil, ErrNotFound
		}
		return nil, err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		log.Error("Ошибка генерации OTP", zap.Int64("user_id", a.ID), zap.Error(err))
		return nil, err
	}

	expiresAt := s.now().Add(s.otpTTL)
	rec, err := s.otps.Create(ctx, a.ID, code, expiresAt)
	if err != nil {
		return nil, err
	}
	log.Debug("OTP сохранён", zap.Int64("user_id", a.ID), zap.Int64("otp_id", rec.ID), zap.String("otp", code))

	if s.notifier != nil {
		if err := s.notifier.SendPasswordResetOTP(ctx, a.Email, code, expiresAt); err != nil {
			// код уже сохранён, откатывать не нужно: он просто истечёт
			log.Error("Ошибка отправки OTP", zap.Int64("user_id", a.ID), zap.Error(err))
			return nil, fmt.Errorf("deliver otp: %w", err)
		}
	}

	log.Info("OTP выдан", zap.Int64("user_id", a.ID), zap.Time("expires_at", expiresAt))
	return &models.OTPIssued{UserID: a.ID, ExpiresAt: expiresAt}, nil
}

// StoreOTP сохраняет код, сгенерированный на стороне UI.
func (s *PasswordService) StoreOTP(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.PasswordResetOTP, error) {
	logger.WithCtx(ctx).Info("Сохранение OTP", zap.Int64("user_id", userID))

	rec, err := s.otps.Create(ctx, userID, code, expiresAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// VerifyOTP принимает код один раз: найденная запись удаляется.
// Неверный код, истёкший код и неизвестный пользователь дают одну и ту же ошибку.
func (s *PasswordService) VerifyOTP(ctx context.Context, userID int64, code string) (int64, error) {
	log := logger.WithCtx(ctx)

	rec, err := s.otps.FindActive(ctx, userID, code, s.now())
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка поиска OTP", zap.Int64("user_id", userID), zap.Error(err))
		}
		log.Info("OTP не прошёл проверку", zap.Int64("user_id", userID))
		return 0, ErrInvalidOTP
	}

	// поиск и удаление не в транзакции: код принимает тот, чей DELETE удалил строку
	if err := s.otps.Delete(ctx, rec.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("OTP уже использован параллельным запросом", zap.Int64("otp_id", rec.ID))
			return 0, ErrInvalidOTP
		}
		log.Error("Ошибка удаления использованного OTP", zap.Int64("otp_id", rec.ID), zap.Error(err))
		return 0, err
	}

	log.Info("OTP подтверждён", zap.Int64("user_id", rec.UserID))
	return rec.UserID, nil
}

// IssueResetToken ничего не хранит; UpdatePassword токен не проверяет.
func (s *PasswordService) IssueResetToken(ctx context.Context, userID int64) (string, error) {
	token, err := utils.GenerateResetToken(userID, s.now())
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка генерации reset токена", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	return token, nil
}

// UpdatePassword хеширует новый пароль и записывает его. Длину и подтверждение
// проверяет UI, здесь принимается любой пароль.
func (s *PasswordService) UpdatePassword(ctx context.Context, userID int64, newPassword string) (*models.AdminAccount, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление пароля", zap.Int64("user_id", userID))

	hash, err := utils.HashPassword(newPassword, s.cost)
	if err != nil {
		log.Error("Ошибка генерации хеша пароля", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	a, err := s.admins.UpdatePassword(ctx, userID, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	log.Info("Пароль успешно обновлён", zap.Int64("user_id", userID))
	return a, nil
}

// PurgeExpiredOTPs удаляет истёкшие коды. Вызывается только фоновой чисткой.
func (s *PasswordService) PurgeExpiredOTPs(ctx context.Context) (int64, error) {
	return s.otps.DeleteExpired(ctx, s.now())
}
