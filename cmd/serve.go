package cmd

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

	"github.com/naka-gawa/github-profile-card/internal/config"
	"github.com/naka-gawa/github-profile-card/internal/counter"
	"github.com/naka-gawa/github-profile-card/internal/gateway"
	"github.com/naka-gawa/github-profile-card/internal/handler"
	"github.com/naka-gawa/github-profile-card/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the card and counter endpoints over HTTP",
	Long: `Starts an HTTP server exposing /api/generate?username=<user> (SVG card)
and /api/stats?action=<action> (usage counters). Settings come from the environment
or a .env file; --port and --stats-file override them.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		cfg := config.Load()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if path, _ := cmd.Flags().GetString("stats-file"); path != "" {
			cfg.StatsFile = path
		}

		githubGateway, err := gateway.NewGitHubGateway(cfg.GitHubAPIURL, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		composer := usecase.NewComposer(githubGateway, logger, cfg.APITimeout, cfg.AvatarTimeout)
		store := counter.NewStore(cfg.StatsFile, logger, counter.WithLocation(cfg.Location()))

		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler.NewRouter(cfg, composer, store, logger),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: cfg.APITimeout + cfg.AvatarTimeout + 5*time.Second,
		}

		go func() {
			logger.Printf("Server starting on port %s\n", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
				os.Exit(1)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Listen port (overrides PORT)")
	serveCmd.Flags().String("stats-file", "", "Counter file path (overrides STATS_FILE)")
}
