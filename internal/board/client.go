// Package board provides the client-side view of the kanban board: an HTTP
// API client and the derived board state (filtering, grouping, optimistic
// moves).
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

// Client talks to the boardd HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// BaseURL returns the server base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTasks fetches all tasks.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the created record.
func (c *Client) CreateTask(ctx context.Context, req *task.CreateRequest) (*task.Task, error) {
	var created task.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask applies a partial update and returns the merged record.
func (c *Client) UpdateTask(ctx context.Context, req *task.UpdateRequest) (*task.Task, error) {
	var updated task.Task
	if err := c.do(ctx, http.MethodPut, "/tasks", req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks?id="+url.QueryEscape(id), nil, nil)
}

// MoveTask reassigns a task to another column via a partial update.
func (c *Client) MoveTask(ctx context.Context, taskID, toColumnID string) error {
	_, err := c.UpdateTask(ctx, &task.UpdateRequest{
		ID:       taskID,
		ColumnID: &toColumnID,
	})
	return err
}

// ListColumns fetches all columns sorted by order.
func (c *Client) ListColumns(ctx context.Context) ([]column.Column, error) {
	var columns []column.Column
	if err := c.do(ctx, http.MethodGet, "/columns", nil, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// CreateColumn creates a column and returns the created record.
func (c *Client) CreateColumn(ctx context.Context, req *column.CreateRequest) (*column.Column, error) {
	var created column.Column
	if err := c.do(ctx, http.MethodPost, "/columns", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteColumn removes a column by id.
func (c *Client) DeleteColumn(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/columns?id="+url.QueryEscape(id), nil, nil)
}

// Health checks the server health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do issues a request and decodes the JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: server returned status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
