package handler

import (
	"net/http"

	"github.com/msomdec/knit-designer/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. limiter guards
// the login and registration endpoints.
func RegisterRoutes(
	mux *http.ServeMux,
	db Pinger,
	auth *service.AuthService,
	catalog *service.StitchPatternService,
	profiles *service.ProfileService,
	definitions *service.DefinitionService,
	limiter *service.TokenBucket,
	cookieSecure bool,
) {
	authH := NewAuthHandler(auth, cookieSecure)
	catalogH := NewStitchPatternHandler(catalog)
	profileH := NewProfileHandler(profiles)
	definitionH := NewDefinitionHandler(definitions)
	integrationH := NewIntegrationHandler(definitions)

	required := func(h http.HandlerFunc) http.Handler { return RequireAuth(auth, h) }
	optional := func(h http.HandlerFunc) http.Handler { return OptionalAuth(auth, h) }
	limited := func(h http.HandlerFunc) http.Handler { return RateLimit(limiter, h) }

	mux.HandleFunc("GET /healthz", HandleHealthz(db))

	mux.Handle("POST /api/auth/register", limited(authH.HandleRegister))
	mux.Handle("POST /api/auth/login", limited(authH.HandleLogin))
	mux.HandleFunc("POST /api/auth/logout", authH.HandleLogout)
	mux.Handle("GET /api/auth/me", required(authH.HandleMe))

	mux.Handle("POST /api/integration/analyze", optional(integrationH.HandleAnalyze))
	mux.Handle("POST /integration/preview", optional(integrationH.HandlePreview))

	mux.Handle("GET /api/stitch-patterns", required(catalogH.HandleList))
	mux.Handle("POST /api/stitch-patterns", required(catalogH.HandleCreate))
	mux.Handle("GET /api/stitch-patterns/{id}", required(catalogH.HandleGet))
	mux.Handle("DELETE /api/stitch-patterns/{id}", required(catalogH.HandleDelete))

	mux.Handle("GET /api/profiles", required(profileH.HandleList))
	mux.Handle("POST /api/profiles", required(profileH.HandleCreate))
	mux.Handle("GET /api/profiles/{id}", required(profileH.HandleGet))
	mux.Handle("DELETE /api/profiles/{id}", required(profileH.HandleDelete))

	mux.Handle("GET /api/sessions", required(definitionH.HandleList))
	mux.Handle("POST /api/sessions", required(definitionH.HandleStart))
	mux.Handle("GET /api/sessions/{id}", required(definitionH.HandleGet))
	mux.Handle("DELETE /api/sessions/{id}", required(definitionH.HandleDelete))
	mux.Handle("PUT /api/sessions/{id}/snapshot", required(definitionH.HandleUpdateSnapshot))
	mux.Handle("POST /api/sessions/{id}/reset", required(definitionH.HandleReset))
	mux.Handle("GET /api/sessions/{id}/readiness", required(definitionH.HandleReadiness))
	mux.Handle("GET /api/sessions/{id}/prepared", required(definitionH.HandlePrepared))
	mux.Handle("POST /api/sessions/{id}/integration", required(integrationH.HandleSessionAnalyze))
	mux.Handle("POST /api/sessions/{id}/integration/apply", required(integrationH.HandleSessionApply))
	mux.Handle("GET /sessions/{id}/readiness-panel", required(definitionH.HandleReadinessPanel))
}
