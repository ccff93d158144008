package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	orderbot "github.com/weikanglim/OrderBot"
	"github.com/weikanglim/OrderBot/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the bot as an MCP server over stdio.
This allows AI agents (like Claude Desktop) to hold order conversations through tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		app, err := orderbot.New(cfg, orderbot.WithLogger(createLogger(cmd)))
		if err != nil {
			log.Fatalf("Error initializing orderbot: %v", err)
		}

		srv := mcp.NewServer(app.Bot, app.Store, app.Catalog)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		slog.Info("Starting OrderBot MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
