package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"enrolladmin/internal/models"
	"enrolladmin/internal/repository/memory"
	"enrolladmin/internal/services"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handlers-test-secret"

type server struct {
	router *mux.Router
	admins *memory.AdminRepository
	otps   *memory.OTPRepository
	now    time.Time
}

func newServer(t *testing.T) *server {
	t.Helper()
	s := &server{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return s.now }

	s.admins = memory.NewAdminRepository(clock)
	s.otps = memory.NewOTPRepository(clock).WithAdmins(s.admins)

	auth := services.NewAuthService(s.admins, testSecret, 15*time.Minute)
	pw := services.NewPasswordService(s.admins, s.otps, nil, services.PasswordOptions{
		BcryptCost: bcrypt.MinCost,
		Now:        clock,
	})
	s.router = newRouter(NewAuthHandler(auth), NewPasswordHandler(pw))
	return s
}

func newRouter(authH *AuthHandler, pwH *PasswordHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/login", authH.Login).Methods("POST")
	r.HandleFunc("/api/admin/users", authH.GetUserByEmail).Methods("GET")
	r.HandleFunc("/api/password/forgot", pwH.Forgot).Methods("POST")
	r.HandleFunc("/api/password/otp", pwH.StoreOTP).Methods("POST")
	r.HandleFunc("/api/password/verify-otp", pwH.VerifyOTP).Methods("POST")
	r.HandleFunc("/api/password/reset-token", pwH.ResetToken).Methods("POST")
	r.HandleFunc("/api/password/update", pwH.UpdatePassword).Methods("POST")
	return r
}

func (s *server) seedAdmin(t *testing.T, email, password string) *models.AdminAccount {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a, err := s.admins.Create(context.Background(), email, string(hash))
	require.NoError(t, err)
	return a
}

func (s *server) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

var errStoreDown = errors.New("connection refused")

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
