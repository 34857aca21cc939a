package httpapi

import (
	"net/http"

	"github.com/riskibarqy/ubuntu-explorer/internal/usecase"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	hints := resolveClientHints(ctx, r)
	item, err := h.shellService.CreateSession(ctx, usecase.CreateSessionInput{
		ClientIP:    hints.IP,
		CountryHint: hints.Country,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "create session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/v1/sessions/"+item.ID)
	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(ctx, item))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	item, err := h.shellService.GetSession(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get session failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(ctx, item))
}

func (h *Handler) OpenOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenOnboarding")
	defer span.End()

	var req openOnboardingRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID := r.PathValue("sessionID")
	item, err := h.shellService.OpenOnboarding(ctx, sessionID, req.Mode)
	if err != nil {
		h.logger.WarnContext(ctx, "open onboarding failed", "session_id", sessionID, "mode", req.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(ctx, item))
}

func (h *Handler) CloseOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseOnboarding")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	item, err := h.shellService.CloseOnboarding(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "close onboarding failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(ctx, item))
}

func (h *Handler) ApplyOnboardingEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyOnboardingEvent")
	defer span.End()

	var req onboardingEventRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	ev, err := req.toEvent()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID := r.PathValue("sessionID")
	result, err := h.shellService.ApplyOnboardingEvent(ctx, sessionID, ev)
	if err != nil {
		h.logger.WarnContext(ctx, "apply onboarding event failed", "session_id", sessionID, "event", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := onboardingEventResponseDTO{Session: sessionToDTO(ctx, result.Session)}
	if result.Completed != nil {
		payload := payloadToDTO(*result.Completed)
		out.Completed = &payload
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	item, err := h.shellService.Logout(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "logout failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(ctx, item))
}
