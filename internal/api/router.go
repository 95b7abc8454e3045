package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/employee-intake/intake-service/docs"
	"github.com/employee-intake/intake-service/internal/api/handler"
	"github.com/employee-intake/intake-service/internal/api/middleware"
	"github.com/employee-intake/intake-service/internal/core/ports"
	"github.com/employee-intake/intake-service/internal/core/service"
	"github.com/employee-intake/intake-service/internal/infrastructure/http/handlers"
)

// Dependencies carries what the router needs to build the handler graph.
type Dependencies struct {
	Repo ports.EmployeeRepository
	// StoreName labels the repository in the readiness report (e.g. "postgres").
	StoreName string
	Logger    zerolog.Logger
	// Registerer and Gatherer back the HTTP request metrics and /metrics.
	// Both default to the prometheus default registry, which also holds the
	// intake collectors.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
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
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "intake",
		Subsystem:  "http",
		Registerer: deps.Registerer,
	}))
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	employeeService := service.NewEmployeeService(deps.Repo, deps.Logger)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// --- Intake ---
	e.POST("/addEmployee", employeeHandler.Add)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(map[string]handlers.Pinger{
		deps.StoreName: deps.Repo,
	})

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
