// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/session"
	"medibook/services/wizard"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	upstreamClient := upstream.NewClient(
		config.AppConfig.UpstreamBaseURL,
		time.Duration(config.AppConfig.UpstreamTimeoutMS)*time.Millisecond,
	)

	// services.
	sessionService := &session.DefaultSessionService{
		Upstream: upstreamClient,
		Cache:    utils.GetAuthCacheClient(),
	}
	wizardService := &wizard.DefaultWizardService{
		Upstream: upstreamClient,
		Store:    wizard.NewSessionStore(utils.GetWizardCacheClient()),
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(sessionService),
		Doctors:   handlers.NewDoctorHandler(upstreamClient, sessionService),
		Wizard:    handlers.NewWizardHandler(wizardService, sessionService),
		Admin:     handlers.NewAdminHandler(upstreamClient, sessionService),
		AuthCache: utils.GetAuthCacheClient(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetWizardCacheClient(),
		utils.GetAuthCacheClient(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
