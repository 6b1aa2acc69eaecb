package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/boardd/internal/tui"
)

var boardPoll time.Duration

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().DurationVar(&boardPoll, "poll", 0, "board refresh interval (default from config, 2s)")
}

// boardCmd runs the interactive terminal board
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive board view",
	Long: `Open the interactive terminal board.

The board polls the server for changes and supports creating, editing,
moving, and deleting tasks and columns.

Examples:
  # Open the board
  kanban board

  # Against a different server, refreshing every 5s
  kanban board --server http://localhost:9090 --poll 5s`,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	client, poll, err := clientConfig()
	if err != nil {
		return err
	}
	if boardPoll > 0 {
		poll = boardPoll
	}

	p := tea.NewProgram(tui.NewModel(client, poll), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board view failed: %w", err)
	}
	return nil
}
