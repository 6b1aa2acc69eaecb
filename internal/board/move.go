package board

import (
	"context"
	"errors"
	"fmt"
)

// MoveMessage is the typed payload a card carries when picked up: which
// task is moving and which column it came from. Validated on receipt
// before the move operation is invoked.
type MoveMessage struct {
	TaskID       string `json:"taskId"`
	FromColumnID string `json:"fromColumnId"`
}

// Validate checks the message carries both ids.
func (m MoveMessage) Validate() error {
	if m.TaskID == "" {
		return errors.New("move message missing task id")
	}
	if m.FromColumnID == "" {
		return errors.New("move message missing source column id")
	}
	return nil
}

// Move performs the server half of a drop: a no-op when the target equals
// the source, otherwise the partial update moving the task. The caller
// applies the optimistic flip to its own snapshot before invoking Move,
// so this function never touches client state and is safe to run off the
// UI goroutine. The returned refetch flag is true when the server rejected
// the move and the caller must reconcile with a full refetch.
func Move(ctx context.Context, c *Client, msg MoveMessage, toColumnID string) (refetch bool, err error) {
	if err := msg.Validate(); err != nil {
		return false, err
	}
	if msg.FromColumnID == toColumnID {
		return false, nil
	}

	if err := c.MoveTask(ctx, msg.TaskID, toColumnID); err != nil {
		return true, fmt.Errorf("move failed: %w", err)
	}
	return false, nil
}
