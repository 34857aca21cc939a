package httpapi

import "net/http"

func (h *Handler) GetLanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLanding")
	defer span.End()

	landing, err := h.landingService.GetLanding(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get landing failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, landingToDTO(ctx, landing))
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCatalog")
	defer span.End()

	options, err := h.landingService.GetCatalogOptions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get catalog failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, catalogToDTO(ctx, options))
}
