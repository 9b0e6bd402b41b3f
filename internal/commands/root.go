// Package commands provides CLI commands for falconmcp.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevelFlag string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "falconmcp",
	Short: "MCP server for the CrowdStrike Falcon API",
	Long: `falconmcp exposes CrowdStrike Falcon security operations as MCP tools
for a host-controlled agent: detection lookup, device inventory, incident
search, indicator-of-compromise search, and real-time-response command
execution.

Credentials are read from the environment:
  FALCON_CLIENT_ID      API client identifier (required)
  FALCON_CLIENT_SECRET  API client secret (required)
  FALCON_CLOUD          region alias: us-1, us-2, eu-1, us-gov-1 (default us-1)
  FALCON_BASE_URL       explicit base URL, overrides FALCON_CLOUD`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error. Startup
// failures terminate the process; per-operation failures never do.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
}

// newLogger builds the process logger. Logs go to stderr; stdout carries the
// MCP wire protocol.
func newLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(logLevelFlag) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
