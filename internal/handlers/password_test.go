package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotUnknownEmail(t *testing.T) {
	s := newServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/password/forgot", map[string]string{"email": "ghost@school.edu"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found", body["error"])
	assert.Equal(t, 0, s.otps.Count())
}

func TestResetFlow(t *testing.T) {
	s := newServer(t)
	a := s.seedAdmin(t, "admin@school.edu", "old-password")

	rec, body := s.do(t, http.MethodPost, "/api/password/forgot", map[string]string{"email": "admin@school.edu"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(a.ID), data["userId"])

	issued := s.otps.ForUser(a.ID)
	require.Len(t, issued, 1)
	code := issued[0].Code
	assert.Equal(t, s.now.Add(10*time.Minute), issued[0].ExpiresAt)

	// userId строкой тоже принимается
	rec, body = s.do(t, http.MethodPost, "/api/password/verify-otp",
		fmt.Sprintf(`{"userId":"%d","otp":"%s"}`, a.ID, code))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(a.ID), body["data"].(map[string]any)["userId"])
	assert.Empty(t, s.otps.ForUser(a.ID))

	rec, body = s.do(t, http.MethodPost, "/api/password/verify-otp", map[string]any{"userId": a.ID, "otp": code})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired OTP", body["error"])

	rec, body = s.do(t, http.MethodPost, "/api/password/reset-token", map[string]any{"userId": a.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	token := body["token"].(string)
	assert.True(t, strings.HasPrefix(token, fmt.Sprintf("reset_%d_%d_", a.ID, s.now.UnixMilli())), token)

	rec, body = s.do(t, http.MethodPost, "/api/password/update", map[string]any{"userId": a.ID, "newPassword": "new-password"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body["data"].(map[string]any), "password")

	rec, _ = s.do(t, http.MethodPost, "/api/admin/login", map[string]string{"email": "admin@school.edu", "password": "old-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = s.do(t, http.MethodPost, "/api/admin/login", map[string]string{"email": "admin@school.edu", "password": "new-password"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreOTPThenVerify(t *testing.T) {
	s := newServer(t)
	a := s.seedAdmin(t, "admin@school.edu", "pw")

	rec, body := s.do(t, http.MethodPost, "/api/password/otp", map[string]any{
		"userId": a.ID, "otp": "123456", "expiresAt": s.now.Add(5 * time.Minute),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "123456", body["data"].(map[string]any)["otp"])

	s.now = s.now.Add(5*time.Minute + time.Second)
	rec, body = s.do(t, http.MethodPost, "/api/password/verify-otp", map[string]any{"userId": a.ID, "otp": "123456"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired OTP", body["error"])
}

func TestStoreOTPKeepsEarlierCodes(t *testing.T) {
	s := newServer(t)
	a := s.seedAdmin(t, "admin@school.edu", "pw")

	for _, code := range []string{"111111", "222222"} {
		rec, _ := s.do(t, http.MethodPost, "/api/password/otp", map[string]any{
			"userId": a.ID, "otp": code, "expiresAt": s.now.Add(time.Minute),
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, _ := s.do(t, http.MethodPost, "/api/password/verify-otp", map[string]any{"userId": a.ID, "otp": "111111"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = s.do(t, http.MethodPost, "/api/password/verify-otp", map[string]any{"userId": a.ID, "otp": "222222"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordPayloadValidation(t *testing.T) {
	s := newServer(t)

	cases := []struct {
		path string
		body any
	}{
		{"/api/password/forgot", `{"email":""}`},
		{"/api/password/otp", map[string]any{"userId": 1, "otp": "", "expiresAt": s.now}},
		{"/api/password/otp", map[string]any{"userId": 0, "otp": "123456", "expiresAt": s.now}},
		{"/api/password/otp", map[string]any{"userId": 1, "otp": "123456"}},
		{"/api/password/verify-otp", `{"userId":"abc","otp":"123456"}`},
		{"/api/password/reset-token", `[]`},
		{"/api/password/update", map[string]any{"newPassword": "x"}},
	}
	for _, c := range cases {
		rec, body := s.do(t, http.MethodPost, c.path, c.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, c.path)
		assert.Equal(t, false, body["success"], c.path)
	}
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	s := newServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/password/update", map[string]any{"userId": 42, "newPassword": "whatever"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", body["error"])
}
