package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ekshello/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// config holds internal HTTP server configuration
type config struct {
	addr              string
	readHeaderTimeout time.Duration
	sentry            bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithReadHeaderTimeout sets the maximum duration for reading request headers
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(c *config) {
		c.readHeaderTimeout = d
	}
}

// WithSentry enables capturing panics and handler errors to Sentry. The
// Sentry client must be initialized by the caller.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// Route is a routed method and path pair
type Route struct {
	Method string
	Path   string
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	greetingUC interfaces.GreetingUseCase,
	healthUC interfaces.HealthUseCase,
	opts ...Option,
) (*Server, error) {
	if greetingUC == nil || healthUC == nil {
		return nil, goerr.New("use cases are required")
	}

	// Default configuration
	cfg := &config{
		addr:              ":8080",
		readHeaderTimeout: 15 * time.Second,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	apiDoc, err := loadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(PanicResponse)
	if cfg.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	router.NotFound(handleNotFound(router))
	router.MethodNotAllowed(handleMethodNotAllowed(router))

	router.Get("/", NewGreetingHandler(greetingUC).Handle)
	router.Get("/health", NewHealthHandler(healthUC).Handle)
	router.Get("/openapi.json", apiDoc.Handle)
	router.Get("/docs", handleSwaggerUI)
	router.Get("/redoc", handleReDoc)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: cfg.readHeaderTimeout,
		},
		router: router,
	}

	return server, nil
}

// Routes returns all routed method and path pairs sorted by path then method
func (s *Server) Routes() ([]Route, error) {
	var routes []Route
	walkFn := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{Method: method, Path: route})
		return nil
	}

	if err := chi.Walk(s.router, walkFn); err != nil {
		return nil, goerr.Wrap(err, "failed to walk routes")
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	return routes, nil
}
