package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taxsarthi/taxsarthi/internal/config"
	gstbilldomain "github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
	"github.com/taxsarthi/taxsarthi/internal/observability"
	obslogger "github.com/taxsarthi/taxsarthi/internal/observability/logger"
	obsmetrics "github.com/taxsarthi/taxsarthi/internal/observability/metrics"
	obstracing "github.com/taxsarthi/taxsarthi/internal/observability/tracing"
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
	"github.com/taxsarthi/taxsarthi/internal/ratelimit"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(obsCfg observability.Config, m *obsmetrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	orderSvc        orderdomain.Service
	billSvc         gstbilldomain.Service
	downloadLimiter *ratelimit.DownloadLimiter
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	OrderSvc        orderdomain.Service
	BillSvc         gstbilldomain.Service
	DownloadLimiter *ratelimit.DownloadLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		orderSvc:        p.OrderSvc,
		billSvc:         p.BillSvc,
		downloadLimiter: p.DownloadLimiter,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")

	// -------- Orders --------
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.POST("/orders/:id/paid", s.MarkOrderPaid)

	// -------- Invoice download --------
	api.GET("/orders/:id/invoice", s.DownloadRateLimit(), s.DownloadInvoice)
}

// DownloadRateLimit throttles the public download endpoint per client IP.
func (s *Server) DownloadRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := s.downloadLimiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis trouble should not take the endpoint down.
			obslogger.FromContext(c.Request.Context()).Warn("download rate limit check failed")
			c.Next()
			return
		}
		if !allowed {
			AbortWithError(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}
