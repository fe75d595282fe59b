package services

import (
	"context"
	"enrolladmin/internal/config"
	helpers "enrolladmin/internal/utils/helpers"
	"errors"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// EmailService отправляет коды сброса пароля через SMTP.
type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailService(cfg *config.Config) *EmailService {
	var auth smtp.Auth
	if cfg.SMTPUser != "" || cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &EmailService{
		auth: auth,
		from: cfg.SMTPFrom,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		send: smtp.SendMail,
	}
}

func (s *EmailService) SendPasswordResetOTP(ctx context.Context, to, code string, expiresAt time.Time) error {
	if s.host == "" || s.port == "" || s.from == "" {
		return errors.New("mailer missing configuration")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	minutes := int(time.Until(expiresAt).Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return s.sendHTML([]string{to}, "Password reset code", helpers.BuildPasswordResetOTPHTML(code, minutes))
}

func (s *EmailService) sendHTML(to []string, subject, body string) error {
	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	addr := net.JoinHostPort(s.host, s.port)
	return s.send(addr, s.auth, s.from, to, []byte(msg.String()))
}
