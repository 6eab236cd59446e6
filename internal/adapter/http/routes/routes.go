package routes

import (
	"catalogo_equipamentos/internal/infrastructure/config"
	"catalogo_equipamentos/internal/infrastructure/logger"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "catalogo_equipamentos/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.AsJSON); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer app.Close()

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           NewRouter(app),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info(ctx, "[http] listening", logger.String("addr", server.Addr), logger.String("store", cfg.Store.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "[http] server error", logger.ErrorF(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "[http] shutting down")

	sdCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(sdCtx); err != nil {
		logger.Error(sdCtx, "[http] shutdown failed", logger.ErrorF(err))
	}
}

// NewRouter mounts every endpoint of app on a fresh engine.
func NewRouter(app *application) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, app)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEquipmentRoutes(v1, app.equipmentHandler)

	return router
}

func setMiddlewares(router *gin.Engine, app *application) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "[http] recovered from panic", logger.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(app.metrics.Middleware())
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), "[http] request", fields...)
			return
		}
		logger.Info(c.Request.Context(), "[http] request", fields...)
	}
}
