package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/landing", handler.GetLanding)
	mux.HandleFunc("GET /v1/catalog", handler.GetCatalog)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sessions", handler.CreateSession)
	mux.HandleFunc("GET /v1/sessions/{sessionID}", handler.GetSession)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/logout", handler.Logout)

	mux.HandleFunc("POST /v1/sessions/{sessionID}/onboarding", handler.OpenOnboarding)
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}/onboarding", handler.CloseOnboarding)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/onboarding/events", handler.ApplyOnboardingEvent)

	mux.HandleFunc("GET /v1/sessions/{sessionID}/dashboard", handler.GetDashboard)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/dashboard/tab", handler.SelectDashboardTab)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/dashboard/emergency", handler.ToggleEmergency)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/dashboard/profile-editing", handler.ToggleProfileEditing)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("GET /v1/internal/directory/profiles", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ListDirectoryProfiles)))
}
