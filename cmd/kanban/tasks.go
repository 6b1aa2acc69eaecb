package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/boardd/internal/task"
)

var (
	// task command flags
	taskTitle       string
	taskDescription string
	taskPriority    string
	taskAssignee    string
	taskColumn      string
	taskOutputJSON  bool
)

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksMoveCmd)
	tasksCmd.AddCommand(tasksRemoveCmd)

	tasksListCmd.Flags().BoolVar(&taskOutputJSON, "json", false, "Output results as JSON")

	tasksAddCmd.Flags().StringVar(&taskTitle, "title", "", "Task title (required)")
	tasksAddCmd.Flags().StringVar(&taskDescription, "description", "", "Task description")
	tasksAddCmd.Flags().StringVar(&taskPriority, "priority", "medium", "Task priority (low, medium, high)")
	tasksAddCmd.Flags().StringVar(&taskAssignee, "assignee", "", "Task assignee")
	tasksAddCmd.Flags().StringVar(&taskColumn, "column", "", "Column ID (defaults to backlog)")
	_ = tasksAddCmd.MarkFlagRequired("title")
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage board tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List all tasks on the board.

Examples:
  # List tasks
  kanban tasks list

  # As JSON
  kanban tasks list --json`,
	RunE: runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	Long: `Create a task.

Examples:
  # Create a task in the backlog
  kanban tasks add --title "Fix login bug" --priority high

  # Create directly in a column
  kanban tasks add --title "Write docs" --column todo`,
	RunE: runTasksAdd,
}

var tasksMoveCmd = &cobra.Command{
	Use:   "mv <task-id> <column-id>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksMove,
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksRemove,
}

func runTasksList(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	tasks, err := client.ListTasks(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if taskOutputJSON {
		return json.NewEncoder(os.Stdout).Encode(tasks)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tASSIGNEE\tCOLUMN")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Priority, t.Assignee, t.ColumnID)
	}
	return w.Flush()
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	created, err := client.CreateTask(cmd.Context(), &task.CreateRequest{
		Title:       taskTitle,
		Description: taskDescription,
		Priority:    task.Priority(taskPriority),
		Assignee:    taskAssignee,
		ColumnID:    taskColumn,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Printf("Created task %s in column %s\n", created.ID, created.ColumnID)
	return nil
}

func runTasksMove(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	if err := client.MoveTask(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	fmt.Printf("Moved task %s to column %s\n", args[0], args[1])
	return nil
}

func runTasksRemove(cmd *cobra.Command, args []string) error {
	client, _, err := clientConfig()
	if err != nil {
		return err
	}

	if err := client.DeleteTask(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("Deleted task %s\n", args[0])
	return nil
}
