package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/api"
	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/health"
	"github.com/somshrestha/inflo-tech-test/internal/metrics"
	"github.com/somshrestha/inflo-tech-test/internal/users"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
	"github.com/somshrestha/inflo-tech-test/internal/web"
)

// Dependencies holds everything the router mounts
type Dependencies struct {
	Logger      *zap.Logger
	Users       users.UserService
	AuditLogs   auditlogs.AuditLogService
	Validator   validation.UserValidator
	Mapper      viewmodels.Mapper
	Health      *health.Manager
	Metrics     *metrics.Metrics
	CorsOrigins []string
	Development bool
}

// NewRouter assembles the JSON API under /api, the HTML pages, /health
// and /metrics
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RequestID())
	router.Use(RequestLogger(deps.Logger, deps.Metrics))
	router.Use(corsMiddleware(deps.CorsOrigins))

	router.GET("/health", healthHandler(deps.Health))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(api.RecoveryMiddleware(deps.Logger, deps.Development))
	apiGroup.Use(api.ErrorMiddleware(deps.Logger, deps.Development))
	api.NewUserHandlers(deps.Users, deps.Validator, deps.Mapper, deps.Logger).RegisterRoutes(apiGroup)
	api.NewAuditLogHandlers(deps.AuditLogs).RegisterRoutes(apiGroup)

	pages := router.Group("")
	pages.Use(gin.Recovery())
	web.NewHandler(deps.Users, deps.AuditLogs, deps.Validator, deps.Mapper, deps.Logger, !deps.Development).
		RegisterRoutes(pages)

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", RequestIDHeader)
	cfg.ExposeHeaders = []string{"Location", RequestIDHeader}
	return cors.New(cfg)
}

func healthHandler(manager *health.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		services := gin.H{}
		healthy := true

		if manager != nil {
			for name, err := range manager.RuntimeHealthCheck(c.Request.Context()) {
				if err != nil {
					healthy = false
					services[name] = err.Error()
					continue
				}
				services[name] = statusText(true)
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":    statusText(healthy),
			"timestamp": time.Now().Format(time.RFC3339),
			"services":  services,
		})
	}
}
