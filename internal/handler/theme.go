// internal/handler/theme.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/service"
)

type ThemeHandler struct {
	hubService *service.HubService
}

func NewThemeHandler(hubService *service.HubService) *ThemeHandler {
	return &ThemeHandler{hubService: hubService}
}

type ThemeResponse struct {
	BaseResponse
	Theme string `json:"theme"`
}

func (h *ThemeHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	output := h.hubService.Theme(r.Context())
	respondWithJSON(w, http.StatusOK, ThemeResponse{BaseResponse: BaseResponse{Ok: true}, Theme: output.Theme})
}

func (h *ThemeHandler) PutHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SetThemeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.hubService.SetTheme(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTheme) {
			respondWithError(w, http.StatusBadRequest, "Theme must be dark or light")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, ThemeResponse{BaseResponse: BaseResponse{Ok: true}, Theme: output.Theme})
}
