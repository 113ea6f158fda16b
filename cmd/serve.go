package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	config "quicktask.com/quicktask/internal/configs"
	httpapi "quicktask.com/quicktask/internal/http"
	middleware "quicktask.com/quicktask/internal/http/middlewares"
	repository "quicktask.com/quicktask/internal/repositories"
	"quicktask.com/quicktask/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the QuickTask HTTP API on APP_HOST:APP_PORT",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		redisClient, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return err
		}

		checks := []httpapi.ReadinessCheck{httpapi.DatabaseCheck(sqlDB)}
		var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		if redisClient != nil {
			defer redisClient.Close()
			limiter = middleware.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
			checks = append(checks, httpapi.RedisCheck(redisClient))
		}

		taskService := services.NewTaskService(repository.NewTaskRepository(database))
		e := httpapi.NewServer(httpapi.NewHandler(taskService, checks...), limiter)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
