package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/internal/leads/store"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
	"github.com/aussiebroadwan/leads/pkg/metricsx"
	"github.com/aussiebroadwan/leads/pkg/slogx"

	_ "github.com/aussiebroadwan/leads/api/leads" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits holds one profile per class of endpoint.
type RateLimits struct {
	Login  httpx.RateLimitConfig
	Submit httpx.RateLimitConfig
	Read   httpx.RateLimitConfig
	Public httpx.RateLimitConfig

	// TrustProxyHeaders keys limits on X-Forwarded-For / X-Real-IP instead
	// of the peer address. Only set it behind a reverse proxy that
	// overwrites those headers.
	TrustProxyHeaders bool
}

// DefaultRateLimits returns the httpx default profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Login:  httpx.LoginLimit,
		Submit: httpx.SubmitLimit,
		Read:   httpx.ReadLimit,
		Public: httpx.PublicLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics
	store        store.Store

	PublicConfig domain.PublicConfig
	RateLimits   RateLimits
	TokenService *service.TokenService
	LeadService  *service.LeadService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	m *metricsx.Metrics,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		metrics:      m,
		RateLimits:   DefaultRateLimits(),
	}

	// Metrics sit inside the logger so they see the matched route pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		m.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSimulations()
	r.registerApplications()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Leads API
//	@version		0.1.0
//	@description	Lead capture for consortium simulations and job applications.
//	@description
//	@description				Public forms are open; reading leads back requires an admin bearer token from /api/auth/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/leads
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 admin token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn gates a handler on a valid admin bearer token.
func (r *Router) authn() httpx.Middleware {
	validate := httpx.AuthenticatorFunc(func(ctx context.Context, token string) (httpx.Principal, error) {
		return r.TokenService.Validate(ctx, token)
	})
	return httpx.AuthnMiddleware(validate, r.writeAuthError)
}

func (r *Router) clientIP() httpx.KeyExtractor {
	return httpx.ClientIPExtractor(r.RateLimits.TrustProxyHeaders)
}

// protected chains the token gate and the per-admin read limit.
func (r *Router) protected(h http.Handler) http.Handler {
	return httpx.Chain(h,
		r.authn(),
		httpx.RateLimitByUser(r.RateLimits.Read, r.clientIP()),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{TokenService: r.TokenService}

	// POST /login - strict rate limit by IP + username to slow brute force
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.RateLimits.Login, r.clientIP(), "username"),
		),
	)

	r.Mux.Handle("POST /api/auth/logout", r.protected(http.HandlerFunc(h.HandleLogout)))
	r.Mux.Handle("GET /api/auth/me", r.protected(http.HandlerFunc(h.HandleMe)))
}

func (r *Router) registerSimulations() {
	h := &SimulationsHandler{LeadService: r.LeadService}

	// Public form - rate limited by IP against spam
	r.Mux.Handle("POST /api/simulations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(r.RateLimits.Submit, r.clientIP()),
		),
	)

	r.Mux.Handle("GET /api/simulations", r.protected(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/simulations/{id}", r.protected(http.HandlerFunc(h.HandleGet)))
}

func (r *Router) registerApplications() {
	h := &ApplicationsHandler{LeadService: r.LeadService}

	r.Mux.Handle("POST /api/applications",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(r.RateLimits.Submit, r.clientIP()),
		),
	)

	r.Mux.Handle("GET /api/applications", r.protected(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/applications/{id}", r.protected(http.HandlerFunc(h.HandleGet)))
}

func (r *Router) registerSystem() {
	// Public diagnostics - lenient limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /api/config",
		httpx.Chain(ConfigHandler(r.PublicConfig),
			httpx.RateLimitByIP(r.RateLimits.Public, r.clientIP()),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.RateLimits.Public, r.clientIP()),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(r.RateLimits.Public, r.clientIP()),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
