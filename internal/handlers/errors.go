package handlers

import (
	"enrolladmin/internal/services"
	helpers "enrolladmin/internal/utils/helpers"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// writeServiceError переводит ошибку сервиса в конверт {success:false, error}.
// Ошибки хранилища отдаются клиенту как есть.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		helpers.Error(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrInvalidOTP):
		helpers.Error(w, http.StatusBadRequest, services.ErrInvalidOTP.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, services.ErrNotFound.Error())
	default:
		log.Error("Ошибка обработки запроса", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, err.Error())
	}
}
