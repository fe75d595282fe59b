package services

import (
	"context"
	"enrolladmin/internal/logger"
	"time"

	"go.uber.org/zap"
)

// StartOTPReaper периодически удаляет истёкшие коды, пока ctx жив.
// При interval <= 0 ничего не запускает.
func StartOTPReaper(ctx context.Context, svc *PasswordService, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := svc.PurgeExpiredOTPs(ctx)
				if err != nil {
					logger.Log.Warn("Не удалось удалить истёкшие OTP", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Log.Info("Удалены истёкшие OTP", zap.Int64("count", n))
				}
			}
		}
	}()
}
