package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/workbench/internal/backup"
	"github.com/thatcatcamp/workbench/internal/config"
	"github.com/thatcatcamp/workbench/internal/handlers"
	"github.com/thatcatcamp/workbench/internal/middleware"
	"github.com/thatcatcamp/workbench/internal/themes"
	"go.uber.org/zap"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the workbench HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fail(err)
		}
		defer a.close()

		editor := a.editor()
		if _, err := editor.Init(); err != nil {
			a.logger.Warn("initial palette rejected, serving defaults", zap.Error(err))
		}
		composer := a.composer()

		// the client reports its color scheme through the API
		scheme := themes.NewStaticScheme(false)
		api := &handlers.API{
			Editor:   editor,
			Composer: composer,
			Themes:   a.themes(scheme, themes.NewAttributes()),
			Scheme:   scheme,
			Notifier: a.notifier,
			Logger:   a.logger.Named("api"),
		}

		if config.GetBool("backups.enable_auto_backup") {
			manager := backup.NewBackupManager(config.GetString("backups.path"), a.store)
			scheduler := backup.NewScheduler(manager, config.GetDuration("backups.interval"), config.GetInt("backups.retention"), a.logger)
			schedulerDone := scheduler.Start()
			defer func() {
				scheduler.Stop()
				<-schedulerDone
			}()
		}

		limiter := middleware.NewRateLimiter(config.GetInt("server.rate_limit"), config.GetDuration("server.rate_interval"))
		defer limiter.Stop()

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.RequestLogger(a.logger.Named("http")))
		r.Use(middleware.SecurityHeadersMiddleware())
		r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.allowed_networks")))
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "workbench",
			})
		})
		api.Register(r)

		addr := fmt.Sprintf(":%s", config.GetString("server.port"))
		server := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			a.logger.Info("starting HTTP server", zap.String("addr", addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				fail(fmt.Errorf("server error: %w", err))
			}
		case <-ctx.Done():
			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("shutdown failed", zap.Error(err))
			}
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
