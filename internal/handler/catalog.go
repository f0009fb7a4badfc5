package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JoelOnyedika/flutterpay/internal/catalog"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// CatalogHandler serves the static reference data the flows render.
type CatalogHandler struct {
	service *catalog.Service
	logger  logger.Logger
}

func NewCatalogHandler(service *catalog.Service, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: log}
}

func (h *CatalogHandler) Networks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Networks())
}

func (h *CatalogHandler) DataPlans(w http.ResponseWriter, r *http.Request) {
	networkID := mux.Vars(r)["network"]
	plans, err := h.service.DataPlans(networkID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, plans)
}

func (h *CatalogHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods := h.service.PaymentMethods()
	out := make([]map[string]interface{}, 0, len(methods))
	for _, m := range methods {
		out = append(out, map[string]interface{}{
			"id":               m.MethodID(),
			"name":             m.DisplayName(),
			"symbol":           m.Symbol(),
			"icon":             m.Icon(),
			"balance":          m.Balance(),
			"display_decimals": m.DisplayDecimals(),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) PresetAmounts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.PresetAmounts())
}

func (h *CatalogHandler) RecentNumbers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.RecentNumbers())
}

func (h *CatalogHandler) ServiceTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.ServiceTypes())
}

func (h *CatalogHandler) UtilityProviders(w http.ResponseWriter, r *http.Request) {
	serviceType := r.URL.Query().Get("type")
	respondJSON(w, http.StatusOK, h.service.UtilityProviders(serviceType))
}

func (h *CatalogHandler) RecentPayments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.RecentPayments())
}

func (h *CatalogHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, h.service.Contacts(query))
}
