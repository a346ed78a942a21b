// internal/handler/editor.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/editor"
	"github.com/jaepaama/Employeehub/internal/service"
)

type EditorHandler struct {
	hubService *service.HubService
}

func NewEditorHandler(hubService *service.HubService) *EditorHandler {
	return &EditorHandler{hubService: hubService}
}

type EditorResponse struct {
	BaseResponse
	State editor.State `json:"state"`
}

func (h *EditorHandler) OpenHandler(w http.ResponseWriter, r *http.Request) {
	var input service.OpenEditorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.hubService.OpenEditor(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, "Kind must be training or policy")
			return
		}
		slog.ErrorContext(r.Context(), "Editor open error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, EditorResponse{BaseResponse: BaseResponse{Ok: true}, State: output.State})
}

func (h *EditorHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SaveEditorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.hubService.SaveEditor(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			// Editor stays open; return its retained state with the error.
			respondWithJSON(w, http.StatusUnprocessableEntity, EditorResponse{State: output.State})
		case errors.Is(err, domain.ErrEditorClosed):
			respondWithError(w, http.StatusConflict, "Editor is not open")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Admin access required")
		default:
			slog.ErrorContext(r.Context(), "Editor save error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, EditorResponse{BaseResponse: BaseResponse{Ok: true}, State: output.State})
}

func (h *EditorHandler) CloseHandler(w http.ResponseWriter, r *http.Request) {
	output := h.hubService.CloseEditor(r.Context())
	respondWithJSON(w, http.StatusOK, EditorResponse{BaseResponse: BaseResponse{Ok: true}, State: output.State})
}

func (h *EditorHandler) StateHandler(w http.ResponseWriter, r *http.Request) {
	output := h.hubService.EditorState(r.Context())
	respondWithJSON(w, http.StatusOK, EditorResponse{BaseResponse: BaseResponse{Ok: true}, State: output.State})
}
