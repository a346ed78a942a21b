// internal/handler/catalog.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/service"
)

type CatalogHandler struct {
	hubService *service.HubService
}

func NewCatalogHandler(hubService *service.HubService) *CatalogHandler {
	return &CatalogHandler{hubService: hubService}
}

type CatalogResponse struct {
	BaseResponse
	Cards interface{} `json:"cards"`
}

func (h *CatalogHandler) ListTraining(w http.ResponseWriter, r *http.Request) {
	output, err := h.hubService.ListTraining(r.Context())
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CatalogResponse{BaseResponse: BaseResponse{Ok: true}, Cards: output.Cards})
}

func (h *CatalogHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	output, err := h.hubService.ListPolicies(r.Context())
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CatalogResponse{BaseResponse: BaseResponse{Ok: true}, Cards: output.Cards})
}

func (h *CatalogHandler) CompleteTraining(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid module ID")
		return
	}

	output, err := h.hubService.CompleteTraining(r.Context(), service.CompleteTrainingInput{ModuleID: id})
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CatalogResponse{BaseResponse: BaseResponse{Ok: true}, Cards: output.Cards})
}

// DeleteTraining removes a module. The confirm query parameter carries the
// outcome of the client-side confirmation prompt; anything but "true" leaves
// the catalog unchanged.
func (h *CatalogHandler) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid module ID")
		return
	}

	input := service.DeleteTrainingInput{
		ModuleID:  id,
		Confirmed: r.URL.Query().Get("confirm") == "true",
	}

	output, err := h.hubService.DeleteTraining(r.Context(), input)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CatalogResponse{BaseResponse: BaseResponse{Ok: true}, Cards: output.Cards})
}

func (h *CatalogHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid policy ID")
		return
	}

	input := service.DeletePolicyInput{
		PolicyID:  id,
		Confirmed: r.URL.Query().Get("confirm") == "true",
	}

	output, err := h.hubService.DeletePolicy(r.Context(), input)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CatalogResponse{BaseResponse: BaseResponse{Ok: true}, Cards: output.Cards})
}

func (h *CatalogHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	entries, err := h.hubService.AuditTrail(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			respondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		h.respondCatalogError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "entries": entries})
}

func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Catalog error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Please log in again")
	case errors.Is(err, domain.ErrModuleNotFound), errors.Is(err, domain.ErrPolicyNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
