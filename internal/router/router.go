package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jwalitptl/echo-report-api/internal/config"
	"github.com/jwalitptl/echo-report-api/internal/handler"
	"github.com/jwalitptl/echo-report-api/internal/middleware"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "echoreport_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "echoreport_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// Handler registers a group of routes on the API router group
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// Router wires middleware, health endpoints and API handlers
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	health *handler.Handler
}

// New builds the HTTP router with the standard middleware chain
func New(cfg *config.Config, health *handler.Handler) *Router {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.ErrorHandler())
	engine.Use(metricsMiddleware())
	engine.Use(middleware.RequestSizeLimit(cfg.Server.MaxBodyBytes))
	engine.Use(middleware.Timeout(middleware.TimeoutConfig{Duration: cfg.Server.WriteTimeout}))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowedOrigins = cfg.CORS.AllowedOrigins
	}
	engine.Use(middleware.CORS(corsConfig))

	if cfg.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			BurstSize:         cfg.RateLimit.BurstSize,
		}))
	}

	r := &Router{
		engine: engine,
		cfg:    cfg,
		health: health,
	}
	r.registerHealthRoutes()
	return r
}

// Register mounts the given handlers under /api/v1
func (r *Router) Register(handlers ...Handler) {
	api := r.engine.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}

// Engine exposes the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) registerHealthRoutes() {
	health := r.engine.Group("/health")
	{
		health.GET("/live", r.health.LivenessCheck)
		health.GET("/ready", r.health.ReadinessCheck)
		health.GET("/metrics", r.health.MetricsHandler)
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
