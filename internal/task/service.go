// Package task provides CRUD operations over the task collection.
package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/boardd/internal/store"
)

// DefaultColumnID is assigned when a create request omits the column.
const DefaultColumnID = "backlog"

// Service provides task collection operations.
type Service interface {
	// List returns all tasks, unordered.
	List(ctx context.Context) ([]Task, error)

	// Create persists a new task with a generated id.
	Create(ctx context.Context, req *CreateRequest) (*Task, error)

	// Update merges the supplied fields over the existing task.
	Update(ctx context.Context, req *UpdateRequest) (*Task, error)

	// Delete removes a task. Returns ErrNotFound when no task had that id.
	Delete(ctx context.Context, id string) error
}

// service implements the Service interface.
type service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a task service on the given store.
func NewService(st store.Store, logger *zap.Logger) (Service, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: st, logger: logger}, nil
}

// List returns all tasks, unordered.
func (s *service) List(ctx context.Context) ([]Task, error) {
	fields, err := s.store.HGetAll(ctx, store.TasksKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0, len(fields))
	for id, raw := range fields {
		var t Task
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			s.logger.Warn("skipping undecodable task record",
				zap.String("id", id),
				zap.Error(err),
			)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Create persists a new task with a generated id. Intentionally no
// validation of the title or the priority enum: the client enforces both
// before submit, matching the original surface.
func (s *service) Create(ctx context.Context, req *CreateRequest) (*Task, error) {
	t := Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		ColumnID:    req.ColumnID,
	}
	if t.ColumnID == "" {
		t.ColumnID = DefaultColumnID
	}

	if err := s.persist(ctx, &t); err != nil {
		return nil, err
	}

	s.logger.Info("created task",
		zap.String("id", t.ID),
		zap.String("column_id", t.ColumnID),
	)
	return &t, nil
}

// Update merges the supplied fields over the existing record and persists
// the result. The read-then-write is not atomic: two concurrent updates to
// the same task can lose fields, last write wins.
func (s *service) Update(ctx context.Context, req *UpdateRequest) (*Task, error) {
	if req.ID == "" {
		return nil, ErrMissingID
	}

	raw, err := s.store.HGet(ctx, store.TasksKey, req.ID)
	if errors.Is(err, store.ErrFieldNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", req.ID, err)
	}

	var existing Task
	if err := json.Unmarshal([]byte(raw), &existing); err != nil {
		return nil, fmt.Errorf("failed to decode task %s: %w", req.ID, err)
	}

	merged := merge(existing, req)
	if err := s.persist(ctx, &merged); err != nil {
		return nil, err
	}

	s.logger.Info("updated task",
		zap.String("id", merged.ID),
		zap.String("column_id", merged.ColumnID),
	)
	return &merged, nil
}

// Delete removes a task by id.
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	n, err := s.store.HDel(ctx, store.TasksKey, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted task", zap.String("id", id))
	return nil
}

func (s *service) persist(ctx context.Context, t *Task) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode task %s: %w", t.ID, err)
	}
	if err := s.store.HSet(ctx, store.TasksKey, t.ID, string(data)); err != nil {
		return fmt.Errorf("failed to save task %s: %w", t.ID, err)
	}
	return nil
}
