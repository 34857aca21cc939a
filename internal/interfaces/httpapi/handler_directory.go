package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/ubuntu-explorer/internal/usecase"
)

func (h *Handler) ListDirectoryProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDirectoryProfiles")
	defer span.End()

	if h.directory == nil {
		writeError(ctx, w, fmt.Errorf("%w: profile directory is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw))
			return
		}
		limit = parsed
	}

	items, err := h.directory.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list directory profiles failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]directoryProfileDTO, 0, len(items))
	for _, item := range items {
		out = append(out, directoryProfileToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
