package admin_login

import (
	"errors"
	"net/http"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers"
	authService "github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/auth"
)

const codeInvalidCredentials = "invalid_credentials"

type Handler struct {
	auth   AuthService
	logger Logger
}

func NewHandler(auth AuthService, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, codeInvalidCredentials)
		return
	}

	token, err := h.auth.Login(req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			h.logger.Warn("POST /admin/login - Invalid credentials for login %q", req.Login)
			handlers.RespondUnauthorized(w, codeInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin authenticated")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
