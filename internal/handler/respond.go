// Package handler provides the HTTP handlers for the FlashLink API.
package handler

import (
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"

	"github.com/JoelOnyedika/flutterpay/internal/wizard"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps service errors onto HTTP statuses. Guard
// rejections keep their toast wording so the client can show it.
func respondDomainError(w http.ResponseWriter, err error) {
	var rej *wizard.Rejection
	if goerrors.As(err, &rej) {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":       rej.Title,
			"description": rej.Description,
		})
		return
	}

	switch {
	case goerrors.Is(err, errors.ErrFlowNotFound),
		goerrors.Is(err, errors.ErrSessionNotFound),
		goerrors.Is(err, errors.ErrNetworkNotFound),
		goerrors.Is(err, errors.ErrPlanNotFound),
		goerrors.Is(err, errors.ErrProviderNotFound),
		goerrors.Is(err, errors.ErrCurrencyNotFound),
		goerrors.Is(err, errors.ErrContactNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case goerrors.Is(err, errors.ErrInvalidStep),
		goerrors.Is(err, errors.ErrSettlementInFlight),
		goerrors.Is(err, errors.ErrUserAlreadyExists),
		goerrors.Is(err, errors.ErrDuplicateRequest):
		respondError(w, http.StatusConflict, err.Error())
	case goerrors.Is(err, errors.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case goerrors.Is(err, errors.ErrValidationFailed),
		goerrors.Is(err, errors.ErrInvalidAmount),
		goerrors.Is(err, errors.ErrPasswordMismatch),
		goerrors.Is(err, errors.ErrTermsNotAccepted):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a request body with the usual guards: a size cap,
// unknown fields rejected, and a clear message for an empty body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			respondError(w, http.StatusBadRequest, "Request body is required")
			return false
		}
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// NotFound is the JSON catch-all for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Resource not found")
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
