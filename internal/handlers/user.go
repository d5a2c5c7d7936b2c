package handlers

import (
	"ItemGate/internal/config"
	"ItemGate/internal/middleware"
	"ItemGate/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler проверяет логин и пароль.
type UserHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер логина
func NewUserHandler(authService *service.AuthService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{AuthService: authService, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login проверяет пару логин/пароль. Ни сессии, ни токена не выдаёт.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		h.Logger.Infow("Login rejected", "username", req.Username,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		writeMessage(w, http.StatusUnauthorized, msgInvalidCreds)
	case err != nil:
		h.Logger.Errorw("Login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
	default:
		writeMessage(w, http.StatusOK, msgLoginOK)
	}
}
