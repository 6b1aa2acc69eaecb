package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
}

// healthCmd checks server health
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check boardd server health",
	Long: `Check the health status of the boardd HTTP server.

Examples:
  # Check health
  kanban health

  # Check health on a different server
  kanban health --server http://localhost:9090`,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	if err := client.Health(cmd.Context()); err != nil {
		return fmt.Errorf("server unhealthy: %w", err)
	}

	fmt.Println("Server is healthy")
	return nil
}
