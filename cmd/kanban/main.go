// Package main implements the kanban CLI for the boardd HTTP server.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/boardd/internal/board"
	"github.com/fyrsmithlabs/boardd/internal/config"
)

var (
	// serverURL is the base URL for the boardd HTTP server
	serverURL string
	// configPath is an optional YAML config file
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "CLI for boardd kanban board operations",
	Long: `kanban is a command-line interface for the boardd HTTP server.
It provides a terminal board view plus commands for managing tasks and columns.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "boardd server URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
}

// clientConfig resolves the server URL and poll interval from flags,
// environment, and the optional config file. The --server flag wins.
func clientConfig() (*board.Client, time.Duration, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, 0, err
	}

	url := cfg.Client.ServerURL
	if serverURL != "" {
		url = serverURL
	}
	return board.NewClient(url), cfg.Client.PollInterval, nil
}
