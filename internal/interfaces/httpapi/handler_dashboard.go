package httpapi

import "net/http"

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	view, err := h.dashboardService.Get(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, view))
}

func (h *Handler) SelectDashboardTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectDashboardTab")
	defer span.End()

	var req selectTabRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID := r.PathValue("sessionID")
	view, err := h.dashboardService.SelectTab(ctx, sessionID, req.Tab)
	if err != nil {
		h.logger.WarnContext(ctx, "select dashboard tab failed", "session_id", sessionID, "tab", req.Tab, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, view))
}

func (h *Handler) ToggleEmergency(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleEmergency")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	view, err := h.dashboardService.ToggleEmergency(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle emergency failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, view))
}

func (h *Handler) ToggleProfileEditing(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleProfileEditing")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	view, err := h.dashboardService.ToggleProfileEditing(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle profile editing failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, view))
}
