package middleware

import (
	"enrolladmin/internal/logger"
	"enrolladmin/internal/reqctx"
	"enrolladmin/internal/utils"
	helpers "enrolladmin/internal/utils/helpers"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// JWTAuth пропускает запрос только с валидным access-токеном администратора.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "missing access token")
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			adminID, email, err := utils.ParseAccessToken(secret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := reqctx.WithAdmin(r.Context(), adminID, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
