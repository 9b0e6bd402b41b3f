package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/falconmcp/internal/api"
	"github.com/diogo/falconmcp/internal/config"
	"github.com/diogo/falconmcp/internal/mcp"
	"github.com/diogo/falconmcp/internal/ops"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Falcon operations as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := api.NewClient(cfg, api.WithLogger(logger))

		reg := ops.NewRegistry()
		if err := ops.RegisterFalconOps(reg, client); err != nil {
			return fmt.Errorf("register operations: %w", err)
		}

		dispatcher := ops.NewDispatcher(reg, logger)
		srv := mcp.NewServer(dispatcher, Version, logger)

		logger.Info("serving", "operations", reg.Count(), "base_url", cfg.BaseURL)
		return mcp.Serve(srv)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
