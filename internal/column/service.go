// Package column provides CRUD and seeding over the column collection.
package column

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/boardd/internal/store"
)

// ErrMissingID is returned when a delete request omits the required id.
var ErrMissingID = errors.New("column id required")

// Service provides column collection operations.
type Service interface {
	// List returns all columns sorted ascending by order. When the
	// collection is empty it first seeds the four defaults.
	List(ctx context.Context) ([]Column, error)

	// Create persists a new column ordered after the current maximum.
	Create(ctx context.Context, req *CreateRequest) (*Column, error)

	// Delete removes a column unconditionally. Tasks referencing it are
	// left untouched and become orphaned.
	Delete(ctx context.Context, id string) error
}

// service implements the Service interface.
type service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a column service on the given store.
func NewService(st store.Store, logger *zap.Logger) (Service, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: st, logger: logger}, nil
}

// List returns all columns sorted by order, seeding defaults when empty.
// Seeding happens only when the hash has no fields at all; it never
// re-seeds, even if the defaults are later deleted while other columns
// remain.
func (s *service) List(ctx context.Context) ([]Column, error) {
	columns, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		s.logger.Info("seeding default columns")
		columns = Defaults()
		for _, col := range columns {
			if err := s.persist(ctx, &col); err != nil {
				return nil, err
			}
		}
	}

	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Order < columns[j].Order
	})
	return columns, nil
}

// Create persists a new column with order one past the current maximum.
func (s *service) Create(ctx context.Context, req *CreateRequest) (*Column, error) {
	columns, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	maxOrder := 0
	for _, col := range columns {
		if col.Order > maxOrder {
			maxOrder = col.Order
		}
	}

	col := Column{
		ID:    uuid.New().String(),
		Title: req.Title,
		Color: req.Color,
		Order: maxOrder + 1,
	}
	if col.Color == "" {
		col.Color = DefaultColor
	}

	if err := s.persist(ctx, &col); err != nil {
		return nil, err
	}

	s.logger.Info("created column",
		zap.String("id", col.ID),
		zap.Int("order", col.Order),
	)
	return &col, nil
}

// Delete removes a column by id. No existence check: deleting an absent
// column succeeds.
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	if _, err := s.store.HDel(ctx, store.ColumnsKey, id); err != nil {
		return fmt.Errorf("failed to delete column %s: %w", id, err)
	}

	s.logger.Info("deleted column", zap.String("id", id))
	return nil
}

func (s *service) load(ctx context.Context) ([]Column, error) {
	fields, err := s.store.HGetAll(ctx, store.ColumnsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	columns := make([]Column, 0, len(fields))
	for id, raw := range fields {
		var col Column
		if err := json.Unmarshal([]byte(raw), &col); err != nil {
			s.logger.Warn("skipping undecodable column record",
				zap.String("id", id),
				zap.Error(err),
			)
			continue
		}
		columns = append(columns, col)
	}
	return columns, nil
}

func (s *service) persist(ctx context.Context, col *Column) error {
	data, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("failed to encode column %s: %w", col.ID, err)
	}
	if err := s.store.HSet(ctx, store.ColumnsKey, col.ID, string(data)); err != nil {
		return fmt.Errorf("failed to save column %s: %w", col.ID, err)
	}
	return nil
}
