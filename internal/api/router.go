package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/healthclaim/portal-api/docs"
	"github.com/healthclaim/portal-api/internal/api/handler"
	"github.com/healthclaim/portal-api/internal/api/middleware"
	"github.com/healthclaim/portal-api/internal/core/domain"
	"github.com/healthclaim/portal-api/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Logger      zerolog.Logger
	Environment string
	FrontendURL string

	Users  ports.UserRepository
	Tokens ports.TokenService
	Auth   ports.AuthService
	Portal ports.PortalService

	// Mongo may be nil, which leaves /health/ready unregistered.
	Mongo *mongo.Database
	// Redis may be nil when the login throttle runs without it.
	Redis *redis.Client
}

// routes is satisfied by both *echo.Echo and *echo.Group.
type routes interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit("10M"))

	// --- Operational endpoints ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Every API route is served at the root and under /api.
	register(e, deps)
	register(e.Group("/api"), deps)

	return e
}

func register(r routes, deps Dependencies) {
	authn := middleware.Authenticate(deps.Tokens, deps.Users, deps.Logger)
	anyone := middleware.Guard(middleware.AllowAny)
	signedIn := middleware.Guard(middleware.RequireAuthenticated())
	patients := middleware.Guard(middleware.RequireRole(domain.RolePatient))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	r.POST("/auth/register", authHandler.Register, authn, anyone)
	r.POST("/auth/login", authHandler.Login, authn, anyone)
	r.GET("/auth/me", authHandler.Me, authn, signedIn)
	r.PUT("/auth/profile", authHandler.UpdateProfile, authn, signedIn)
	r.PUT("/auth/change-password", authHandler.ChangePassword, authn, signedIn)

	// --- Portal sample data ---
	portalHandler := handler.NewPortalHandler(deps.Portal)
	r.GET("/patient/me", portalHandler.PatientMe, authn, patients)
	r.GET("/patient/claims", portalHandler.Claims, authn, signedIn)
	r.GET("/notifications", portalHandler.Notifications, authn, signedIn)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.Environment)
	r.GET("/health", healthHandler.Liveness)
	if deps.Mongo != nil {
		healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
		r.GET("/health/ready", healthDepsHandler.Readiness)
	}
}
