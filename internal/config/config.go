package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port      string
	DbDriver  string // postgres|memory
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret      string
	AccessTokenTTL time.Duration

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	OTPTTL          time.Duration
	OTPReapInterval time.Duration
	BcryptCost      int

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	AllowedOrigins []string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует - логгер инициализируется уже из готового конфига.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	accessTTL, err := time.ParseDuration(def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "15m"))
	if err != nil {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRY: %w", err)
	}
	otpTTL, err := time.ParseDuration(def(os.Getenv("OTP_TTL"), "10m"))
	if err != nil {
		return nil, fmt.Errorf("OTP_TTL: %w", err)
	}
	reapEvery, err := time.ParseDuration(def(os.Getenv("OTP_REAP_INTERVAL"), "0s"))
	if err != nil {
		return nil, fmt.Errorf("OTP_REAP_INTERVAL: %w", err)
	}
	cost, err := strconv.Atoi(def(os.Getenv("BCRYPT_COST"), "10"))
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST: %w", err)
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbDriver:  strings.ToLower(def(os.Getenv("DB_DRIVER"), DriverPostgres)),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: accessTTL,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		OTPTTL:          otpTTL,
		OTPReapInterval: reapEvery,
		BcryptCost:      cost,

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     def(os.Getenv("SMTP_FROM"), os.Getenv("SMTP_USER")),

		AllowedOrigins: splitAndTrim(def(os.Getenv("ALLOWED_ORIGINS"), "*")),

		SeedAdminEmail:    os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	switch c.DbDriver {
	case DriverPostgres:
		if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
		}
	case DriverMemory:
		warnings = append(warnings, "DB_DRIVER=memory: data is not persisted")
		if c.SeedAdminEmail == "" || c.SeedAdminPassword == "" {
			warnings = append(warnings, "SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, memory store is empty")
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", c.DbDriver)
	}

	if c.OTPTTL <= 0 {
		return nil, fmt.Errorf("OTP_TTL must be positive")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	// SMTP - предупреждение, коды просто сохраняются без доставки
	if c.SMTPHost == "" {
		warnings = append(warnings, "SMTP is not configured, OTP codes will not be delivered")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN - полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe - DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
