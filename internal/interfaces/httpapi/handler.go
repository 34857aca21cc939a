package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
	"github.com/riskibarqy/ubuntu-explorer/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

// DirectoryReader lists recent profile directory entries.
type DirectoryReader interface {
	ListRecent(ctx context.Context, limit int) ([]profile.Profile, error)
}

type Handler struct {
	landingService   *usecase.LandingService
	shellService     *usecase.ShellService
	dashboardService *usecase.DashboardService
	directory        DirectoryReader
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	landingService *usecase.LandingService,
	shellService *usecase.ShellService,
	dashboardService *usecase.DashboardService,
	directory DirectoryReader,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		landingService:   landingService,
		shellService:     shellService,
		dashboardService: dashboardService,
		directory:        directory,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a strict JSON body into dst. An empty body is accepted
// only when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
