// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/middleware"
	"github.com/jaepaama/Employeehub/internal/model"
	"github.com/jaepaama/Employeehub/internal/service"
)

type AuthHandler struct {
	hubService *service.HubService
}

func NewAuthHandler(hubService *service.HubService) *AuthHandler {
	return &AuthHandler{hubService: hubService}
}

type LoginResponse struct {
	BaseResponse
	Identity *model.Identity `json:"identity,omitempty"`
	Token    string          `json:"token,omitempty"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.hubService.Login(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		Identity:     output.Identity,
		Token:        output.Token,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	tokenID, _ := r.Context().Value(middleware.TokenIDKey).(string)

	if err := h.hubService.Logout(r.Context(), service.LogoutInput{TokenID: tokenID}); err != nil {
		slog.ErrorContext(r.Context(), "Logout error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *AuthHandler) PasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var input service.PasswordResetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.hubService.RequestPasswordReset(r.Context(), input); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, "A valid email is required")
			return
		}
		slog.ErrorContext(r.Context(), "Password reset error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Password reset email sent (simulated)"})
}
