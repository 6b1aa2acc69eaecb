package task

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a unit of work on the board.
type Task struct {
	// ID is the unique identifier, generated server-side on creation.
	ID string `json:"id"`

	// Title is the display title. The client enforces non-empty before
	// submit; the service does not.
	Title string `json:"title"`

	// Description is free-form detail text, may be empty.
	Description string `json:"description"`

	// Priority is one of low, medium, high.
	Priority Priority `json:"priority"`

	// Assignee is a display name, not linked to any identity.
	Assignee string `json:"assignee"`

	// ColumnID references a column by id. Not enforced: a task may
	// reference a deleted column, in which case it is simply excluded
	// from column-grouped views.
	ColumnID string `json:"columnId"`
}

// CreateRequest holds the fields accepted when creating a task.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Assignee    string   `json:"assignee"`
	ColumnID    string   `json:"columnId"`
}

// UpdateRequest is a partial task update. Nil fields are left untouched.
// The set of updatable fields is fixed; anything else in the request body
// is ignored.
type UpdateRequest struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *Priority `json:"priority"`
	Assignee    *string   `json:"assignee"`
	ColumnID    *string   `json:"columnId"`
}

// merge applies the non-nil fields of req over base and returns the result.
func merge(base Task, req *UpdateRequest) Task {
	if req.Title != nil {
		base.Title = *req.Title
	}
	if req.Description != nil {
		base.Description = *req.Description
	}
	if req.Priority != nil {
		base.Priority = *req.Priority
	}
	if req.Assignee != nil {
		base.Assignee = *req.Assignee
	}
	if req.ColumnID != nil {
		base.ColumnID = *req.ColumnID
	}
	return base
}
