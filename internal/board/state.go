package board

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

// Snapshot is one fetched view of the board. Copies held by the client are
// caches, valid only until the next poll or explicit refetch; the store
// remains the single source of truth.
type Snapshot struct {
	Tasks   []task.Task
	Columns []column.Column
}

// FetchAll lists tasks and columns concurrently and returns a snapshot.
// All-or-nothing: if either list fails, no snapshot is returned and the
// caller keeps its previous state.
func FetchAll(ctx context.Context, c *Client) (*Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, err := c.ListTasks(ctx)
		if err != nil {
			return err
		}
		snap.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		columns, err := c.ListColumns(ctx)
		if err != nil {
			return err
		}
		snap.Columns = columns
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Filter returns the tasks whose title or description contains the query,
// case-insensitively. An empty query matches everything.
func Filter(tasks []task.Task, query string) []task.Task {
	if query == "" {
		return tasks
	}

	q := strings.ToLower(query)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// GroupByColumn buckets tasks under their column id. Tasks referencing a
// column not in columns are orphaned and excluded from the result.
func GroupByColumn(tasks []task.Task, columns []column.Column) map[string][]task.Task {
	groups := make(map[string][]task.Task, len(columns))
	for _, col := range columns {
		groups[col.ID] = nil
	}
	for _, t := range tasks {
		if _, ok := groups[t.ColumnID]; ok {
			groups[t.ColumnID] = append(groups[t.ColumnID], t)
		}
	}
	return groups
}

// ApplyMove flips the column of the named task in place. This is the
// optimistic half of a move: it runs before the server confirms, and a
// failed confirmation is repaired by the next full refetch rather than a
// local rollback.
func (s *Snapshot) ApplyMove(taskID, toColumnID string) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == taskID {
			s.Tasks[i].ColumnID = toColumnID
			return
		}
	}
}

// TaskByID returns the task with the given id, or nil.
func (s *Snapshot) TaskByID(id string) *task.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}
