package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/pkg/httpx"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
	"github.com/longevlabs/longev-auth/pkg/slogx"

	_ "github.com/longevlabs/longev-auth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Longev Authentication Service API
//	@version		0.1.0
//	@description	Bearer-token authentication service with password and email one-time-passcode login.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs verifiable against the JWKS endpoint.
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /auth/token-pwd", &PasswordLoginHandler{
		AuthService: r.AuthService,
	})
	r.Mux.Handle("POST /auth/otp", &OTPRequestHandler{
		AuthService: r.AuthService,
	})
	r.Mux.Handle("POST /auth/token-otp", &OTPLoginHandler{
		AuthService: r.AuthService,
	})
}

func (r *Router) registerUsers() {
	r.Mux.Handle("POST /user/signup", &SignupHandler{
		UserService: r.UserService,
	})

	profile := &ProfileHandler{UserService: r.UserService}
	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /user/profile",
		httpx.Chain(http.HandlerFunc(profile.HandleGet), authn))
	r.Mux.Handle("PUT /user/profile",
		httpx.Chain(http.HandlerFunc(profile.HandlePut), authn))
	r.Mux.Handle("PATCH /user/profile",
		httpx.Chain(http.HandlerFunc(profile.HandlePatch), authn))
	r.Mux.Handle("DELETE /user/profile",
		httpx.Chain(http.HandlerFunc(profile.HandleDelete), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}
