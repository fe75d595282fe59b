package models

import "time"

// PasswordResetOTP - строка таблицы password_reset_otps.
// Код одноразовый: при успешной проверке запись удаляется.
type PasswordResetOTP struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Usable сообщает, можно ли ещё принять код в момент now.
func (o *PasswordResetOTP) Usable(now time.Time) bool {
	return now.Before(o.ExpiresAt)
}

// OTPIssued - результат запроса сброса пароля.
type OTPIssued struct {
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
