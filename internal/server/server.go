package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ProteinCalculator/docs"
	"ProteinCalculator/internal/config"
	"ProteinCalculator/internal/handler"
	"ProteinCalculator/internal/metrics"
	"ProteinCalculator/internal/middleware"
	"ProteinCalculator/internal/reference"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// New builds the router with every route and middleware configured by cfg.
func New(cfg *config.Config, content *reference.Content, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	tmpl, err := handler.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	h := handler.New(cfg.Defaults, content, logger)

	router.GET("/healthz", h.Health)
	if cfg.Metrics.Enabled {
		metrics.Register()
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := router.Group("/")
	if cfg.RateLimit.Enabled {
		limited.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	limited.GET("/", h.FormPage)

	api := limited.Group("/api")
	{
		api.GET("/estimate", h.GetEstimate)
		api.POST("/estimate", h.PostEstimate)
		api.GET("/summary", h.GetSummary)
		api.GET("/presets", h.ListPresets)
		api.POST("/presets/:key/apply", h.ApplyPreset)
		api.GET("/references", h.GetReferences)
	}
	return router, nil
}

// Run serves router until ctx is cancelled, then shuts down within the
// configured timeout.
func Run(ctx context.Context, cfg *config.Config, router http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
