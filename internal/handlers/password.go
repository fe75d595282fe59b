package handlers

import (
	"encoding/json"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/models"
	"enrolladmin/internal/services"
	helpers "enrolladmin/internal/utils/helpers"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	svc *services.PasswordService
}

func NewPasswordHandler(svc *services.PasswordService) *PasswordHandler {
	return &PasswordHandler{svc: svc}
}

type forgotReq struct {
	Email string `json:"email"`
}

type storeOTPReq struct {
	UserID    models.FlexID `json:"userId" swaggertype:"integer"`
	OTP       string        `json:"otp"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

type verifyOTPReq struct {
	UserID models.FlexID `json:"userId" swaggertype:"integer"`
	OTP    string        `json:"otp"`
}

type resetTokenReq struct {
	UserID models.FlexID `json:"userId" swaggertype:"integer"`
}

type updatePasswordReq struct {
	UserID      models.FlexID `json:"userId" swaggertype:"integer"`
	NewPassword string        `json:"newPassword"`
}

// Forgot godoc
// @Summary Запрос кода сброса пароля
// @Description Генерирует шестизначный код, сохраняет его на 10 минут и передаёт на доставку. Для неизвестного email возвращает 404.
// @Tags password
// @Accept json
// @Produce json
// @Param input body forgotReq true "Email администратора"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/password/forgot [post]
func (h *PasswordHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req forgotReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		log.Warn("Невалидный payload в Forgot")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	issued, err := h.svc.RequestReset(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"data": issued})
}

// StoreOTP godoc
// @Summary Сохранить OTP
// @Description Сохраняет код, сгенерированный клиентом. Ранее выданные коды остаются действительными.
// @Tags password
// @Accept json
// @Produce json
// @Param input body storeOTPReq true "userId, код и срок действия"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/password/otp [post]
func (h *PasswordHandler) StoreOTP(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req storeOTPReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 || strings.TrimSpace(req.OTP) == "" || req.ExpiresAt.IsZero() {
		log.Warn("Невалидный payload в StoreOTP")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	rec, err := h.svc.StoreOTP(r.Context(), req.UserID.Int64(), req.OTP, req.ExpiresAt)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"data": rec})
}

// VerifyOTP godoc
// @Summary Проверить OTP
// @Description Принимает код один раз. Неверный, истёкший и чужой код дают одну ошибку.
// @Tags password
// @Accept json
// @Produce json
// @Param input body verifyOTPReq true "userId и код"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Router /api/password/verify-otp [post]
func (h *PasswordHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req verifyOTPReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.OTP) == "" {
		log.Warn("Невалидный payload в VerifyOTP")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	userID, err := h.svc.VerifyOTP(r.Context(), req.UserID.Int64(), req.OTP)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"data": map[string]int64{"userId": userID}})
}

// ResetToken godoc
// @Summary Выдать reset токен
// @Description Возвращает непрозрачный токен вида reset_<userId>_<ms>_<suffix>. Токен не сохраняется.
// @Tags password
// @Accept json
// @Produce json
// @Param input body resetTokenReq true "userId"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Router /api/password/reset-token [post]
func (h *PasswordHandler) ResetToken(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req resetTokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный payload в ResetToken")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	token, err := h.svc.IssueResetToken(r.Context(), req.UserID.Int64())
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"token": token})
}

// UpdatePassword godoc
// @Summary Установить новый пароль
// @Description Хеширует пароль bcrypt и обновляет запись admin. Длина и подтверждение проверяются на клиенте.
// @Tags password
// @Accept json
// @Produce json
// @Param input body updatePasswordReq true "userId и новый пароль"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/password/update [post]
func (h *PasswordHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req updatePasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
		log.Warn("Невалидный payload в UpdatePassword")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	a, err := h.svc.UpdatePassword(r.Context(), req.UserID.Int64(), req.NewPassword)
	if err != nil {
		log.Warn("Не удалось обновить пароль", zap.Int64("user_id", req.UserID.Int64()), zap.Error(err))
		writeServiceError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, helpers.Envelope{"data": a})
}
