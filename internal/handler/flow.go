package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JoelOnyedika/flutterpay/internal/middleware"
	"github.com/JoelOnyedika/flutterpay/internal/notification"
	"github.com/JoelOnyedika/flutterpay/internal/session"
	"github.com/JoelOnyedika/flutterpay/internal/settlement"
	"github.com/JoelOnyedika/flutterpay/internal/wizard"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// FlowHandler drives the transaction wizard over HTTP. Each session
// holds at most one machine per flow; opening a flow that is already
// open returns the existing state rather than discarding the draft.
type FlowHandler struct {
	sessions *session.Store
	deps     wizard.Deps
	settler  settlement.Settler
	hub      *notification.Hub
	logger   logger.Logger
}

func NewFlowHandler(sessions *session.Store, deps wizard.Deps, settler settlement.Settler, hub *notification.Hub, log logger.Logger) *FlowHandler {
	return &FlowHandler{
		sessions: sessions,
		deps:     deps,
		settler:  settler,
		hub:      hub,
		logger:   log,
	}
}

func (h *FlowHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		respondDomainError(w, err)
		return nil, false
	}
	return sess, true
}

func (h *FlowHandler) machine(w http.ResponseWriter, r *http.Request) (*wizard.Machine, bool) {
	sess, ok := h.session(w, r)
	if !ok {
		return nil, false
	}
	flow := mux.Vars(r)["flow"]
	m, ok := sess.Machine(flow)
	if !ok {
		respondDomainError(w, errors.ErrFlowNotFound)
		return nil, false
	}
	return m, true
}

// Open starts a flow for the session, or returns the one in progress.
func (h *FlowHandler) Open(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	flow := mux.Vars(r)["flow"]
	if m, exists := sess.Machine(flow); exists {
		respondJSON(w, http.StatusOK, m.Snapshot())
		return
	}

	spec, err := wizard.Flow(flow)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	m := wizard.NewMachine(spec, h.deps, h.settler, h.hub.Notifier(sess.ID), h.logger)
	sess.PutMachine(flow, m)
	h.logger.Info("flow opened", map[string]interface{}{
		"flow":       flow,
		"session_id": sess.ID.String(),
	})
	respondJSON(w, http.StatusCreated, m.Snapshot())
}

// State returns the current snapshot.
func (h *FlowHandler) State(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machine(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, m.Snapshot())
}

// UpdateDraft merges a partial draft edit.
func (h *FlowHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machine(w, r)
	if !ok {
		return
	}

	var patch wizard.DraftPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := m.Apply(patch); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m.Snapshot())
}

// Advance runs the current step's guard and moves forward.
func (h *FlowHandler) Advance(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machine(w, r)
	if !ok {
		return
	}

	if err := m.Advance(); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m.Snapshot())
}

// Back retreats one step.
func (h *FlowHandler) Back(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machine(w, r)
	if !ok {
		return
	}

	if err := m.Back(); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m.Snapshot())
}

// Confirm executes the settlement and returns the success snapshot.
func (h *FlowHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machine(w, r)
	if !ok {
		return
	}

	if _, err := m.Confirm(r.Context()); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m.Snapshot())
}

// Reset clears the flow back to its first step.
func (h *FlowHandler) Reset(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machine(w, r)
	if !ok {
		return
	}

	if err := m.Reset(); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m.Snapshot())
}

// Close discards the flow entirely.
func (h *FlowHandler) Close(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.RemoveMachine(mux.Vars(r)["flow"])
	w.WriteHeader(http.StatusNoContent)
}

// Toasts drains the session's pending notifications.
func (h *FlowHandler) Toasts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.hub.Drain(sess.ID))
}

// Stream upgrades to a websocket that receives toasts as they happen.
func (h *FlowHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.hub.ServeWS(w, r, sess.ID)
}

// Logout drops the session and its notification state.
func (h *FlowHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.sessions.Delete(sessionID)
	h.hub.Forget(sessionID)
	w.WriteHeader(http.StatusNoContent)
}
