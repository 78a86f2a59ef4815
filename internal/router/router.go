package router

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jwalitptl/healthrecord-api/internal/handler"
	"github.com/jwalitptl/healthrecord-api/internal/middleware"
)

// Handler registers routes on a single (authenticated) group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// SplitHandler registers routes across the public and authenticated
// groups, for entities with a mixed access surface.
type SplitHandler interface {
	RegisterRoutes(public, authed *gin.RouterGroup)
}

type Config struct {
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	CORS           middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	authH    Handler
	patientH Handler
	doctorH  SplitHandler
	mappingH SplitHandler
	h        *handler.Handler
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	patientH Handler,
	doctorH SplitHandler,
	mappingH SplitHandler,
	h *handler.Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		authH:    authH,
		patientH: patientH,
		doctorH:  doctorH,
		mappingH: mappingH,
		h:        h,
		metrics:  newRouterMetrics(),
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	})

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.CORS),
		rateLimiter.RateLimit(),
		middleware.Timeout(cfg.RequestTimeout),
		r.metricsMiddleware(),
	)

	return r
}

// Setup mounts everything under /api. Signup/signin, doctor reads, and
// the global mapping listing are public; the rest sits behind the
// bearer-token guard.
func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.setupHealthCheck(api)

	authed := api.Group("")
	authed.Use(r.auth.Authenticate())

	r.authH.RegisterRoutes(api)
	r.patientH.RegisterRoutes(authed)
	r.doctorH.RegisterRoutes(api, authed)
	r.mappingH.RegisterRoutes(api, authed)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

var (
	metricsOnce sync.Once
	metrics     *routerMetrics
)

// newRouterMetrics registers the collectors once; constructing a second
// router (as tests do) reuses them.
func newRouterMetrics() *routerMetrics {
	metricsOnce.Do(func() {
		metrics = buildRouterMetrics()
	})
	return metrics
}

func buildRouterMetrics() *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "healthrecord_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "healthrecord_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
