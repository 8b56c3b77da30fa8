// Package serve starts the HTTP API.
package serve

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"mbeck/finance-analyzer/cmd/root"
	"mbeck/finance-analyzer/internal/advisor"
	"mbeck/finance-analyzer/internal/server"
	"mbeck/finance-analyzer/internal/store"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API: CSV upload, per-session reports, AI advisory.
Listen address and CORS origins come from the configuration.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.Logger()
	cfg := root.Cfg

	var analyzer server.Analyzer
	if cfg.AI.Enabled {
		timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
		a, err := advisor.NewGemini(context.Background(), cfg.AI.APIKey, cfg.AI.Models, timeout, logger)
		if err != nil {
			root.Log.Fatalf("Failed to initialize AI advisory: %v", err)
		}
		analyzer = a
	} else {
		logger.Info("AI advisory disabled")
	}

	srv := server.New(root.BuildPipeline(), store.NewSessionStore(), analyzer, logger)
	router := srv.Router(cfg.Server.CORSOrigins)

	root.Log.Infof("Server starting on %s", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		root.Log.Fatalf("Failed to start server: %v", err)
	}
}
