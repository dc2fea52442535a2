package main

import (
	"fmt"
	"os"

	mcpapi "github.com/drujensen/n8n-mcp/internal/api/mcp"
	"github.com/drujensen/n8n-mcp/internal/impl/config"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"
	"github.com/drujensen/n8n-mcp/internal/impl/tools"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"

var debug bool

var rootCmd = &cobra.Command{
	Use:   "n8n-mcp",
	Short: "n8n-mcp — MCP server for managing n8n workflows",
	Long:  "n8n-mcp exposes workflow management tools over the Model Context Protocol, backed by the n8n REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	// stdout carries the MCP stream; all diagnostics go to stderr.
	logConfig.OutputPaths = []string{"stderr"}
	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.InitConfig(logger)
	if err != nil {
		// Missing credentials are fatal before the transport starts.
		return err
	}
	if cfg.Debug && !debug {
		logConfig.Level.SetLevel(zap.DebugLevel)
	}

	client, err := n8n.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	registry := tools.NewRegistry(client, logger)
	srv := mcpapi.NewServer("n8n-mcp", version, registry, logger)

	logger.Debug("Serving MCP over stdio", zap.String("base_url", cfg.BaseURL))
	return srv.ServeStdio()
}

func main() {
	rootCmd.Version = version
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose request/response logging to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
