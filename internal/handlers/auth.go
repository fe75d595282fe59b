package handlers

import (
	"encoding/json"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/models"
	"enrolladmin/internal/reqctx"
	"enrolladmin/internal/services"
	helpers "enrolladmin/internal/utils/helpers"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool                 `json:"success"`
	User        models.AdminIdentity `json:"user"`
	AccessToken string               `json:"access_token,omitempty"`
	ExpiresAt   *time.Time           `json:"expires_at,omitempty"`
}

type userResponse struct {
	Success bool                `json:"success"`
	User    models.AdminAccount `json:"user"`
}

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Invalid email or password"`
}

// Login godoc
// @Summary Вход администратора
// @Description Проверяет email и пароль по таблице admin. Неизвестный email и неверный пароль дают одинаковую ошибку.
// @Tags admin
// @Accept json
// @Produce json
// @Param input body loginRequest true "Email и пароль"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		log.Warn("Невалидный payload в Login")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	res, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	payload := helpers.Envelope{"user": res.User}
	if res.AccessToken != "" {
		payload["access_token"] = res.AccessToken
		payload["expires_at"] = res.ExpiresAt
	}
	helpers.JSON(w, http.StatusOK, payload)
}

// GetUserByEmail godoc
// @Summary Найти администратора по email
// @Description Точное совпадение email. Возвращает строку admin целиком, кроме хеша пароля: поле password в JSON не сериализуется.
// @Tags admin
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} userResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/admin/users [get]
func (h *AuthHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		helpers.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	a, err := h.authService.GetAccountByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"user": a})
}

// Profile godoc
// @Summary Текущий администратор
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Router /api/admin/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	adminID, ok := reqctx.GetAdminID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	a, err := h.authService.GetProfile(r.Context(), adminID)
	if err != nil {
		log.Warn("Профиль администратора не получен", zap.Int64("admin_id", adminID), zap.Error(err))
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"user": a})
}
