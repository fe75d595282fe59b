package routes

import (
	"enrolladmin/internal/handlers"
	"enrolladmin/internal/middleware"
	helpers "enrolladmin/internal/utils/helpers"
	"net/http"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
	jwtSecret string,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		helpers.JSON(w, http.StatusOK, nil)
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты: вход и сброс пароля ---
	api.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/admin/users", authHandler.GetUserByEmail).Methods("GET")

	pw := api.PathPrefix("/password").Subrouter()
	pw.HandleFunc("/forgot", passwordHandler.Forgot).Methods("POST")
	pw.HandleFunc("/otp", passwordHandler.StoreOTP).Methods("POST")
	pw.HandleFunc("/verify-otp", passwordHandler.VerifyOTP).Methods("POST")
	pw.HandleFunc("/reset-token", passwordHandler.ResetToken).Methods("POST")
	pw.HandleFunc("/update", passwordHandler.UpdatePassword).Methods("POST")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))
	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")
}
