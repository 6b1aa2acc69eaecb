package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/boardd/internal/column"
)

var (
	// column command flags
	columnTitle      string
	columnColor      string
	columnOutputJSON bool
)

func init() {
	rootCmd.AddCommand(columnsCmd)

	columnsCmd.AddCommand(columnsListCmd)
	columnsCmd.AddCommand(columnsAddCmd)
	columnsCmd.AddCommand(columnsRemoveCmd)

	columnsListCmd.Flags().BoolVar(&columnOutputJSON, "json", false, "Output results as JSON")

	columnsAddCmd.Flags().StringVar(&columnTitle, "title", "", "Column title (required)")
	columnsAddCmd.Flags().StringVar(&columnColor, "color", "", "Column color token (defaults to slate)")
	_ = columnsAddCmd.MarkFlagRequired("title")
}

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Manage board columns",
}

var columnsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all columns",
	Long: `List all columns in display order.

A fresh board is seeded with the four default columns on first read.`,
	RunE: runColumnsList,
}

var columnsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a column",
	Long: `Create a column at the end of the board.

Examples:
  # Create a column with the default color
  kanban columns add --title "QA"

  # Pick a color
  kanban columns add --title "Blocked" --color red`,
	RunE: runColumnsAdd,
}

var columnsRemoveCmd = &cobra.Command{
	Use:   "rm <column-id>",
	Short: "Delete a column",
	Long: `Delete a column.

Tasks in the column are not deleted; they stay hidden until moved to a
surviving column.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumnsRemove,
}

func runColumnsList(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	columns, err := client.ListColumns(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list columns: %w", err)
	}

	if columnOutputJSON {
		return json.NewEncoder(os.Stdout).Encode(columns)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOLOR\tORDER")
	for _, c := range columns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.ID, c.Title, c.Color, c.Order)
	}
	return w.Flush()
}

func runColumnsAdd(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	created, err := client.CreateColumn(cmd.Context(), &column.CreateRequest{
		Title: columnTitle,
		Color: columnColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create column: %w", err)
	}

	fmt.Printf("Created column %s (%s) at position %d\n", created.ID, created.Title, created.Order)
	return nil
}

func runColumnsRemove(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	if err := client.DeleteColumn(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}

	fmt.Printf("Deleted column %s\n", args[0])
	return nil
}
