// Package client consumes the console's task API contract.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

// CreatePayload is the body of a task creation request. The server assigns
// the ID.
type CreatePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Label       string `json:"label"`
}

// Client talks to a console server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL. A nil httpClient defaults to
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), http: httpClient}
}

// ListTasks fetches the full task set in server order.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	const op = "list tasks"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tasks", nil)
	if err != nil {
		return nil, errors.NetworkError{Op: op, Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NetworkError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NetworkError{Op: op, StatusCode: resp.StatusCode}
	}

	var tasks []task.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, errors.NetworkError{Op: op, Cause: err}
	}
	return tasks, nil
}

// CreateTask submits a creation payload and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, payload CreatePayload) (task.Task, error) {
	const op = "create task"

	body, err := json.Marshal(payload)
	if err != nil {
		return task.Task{}, errors.NetworkError{Op: op, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tasks", bytes.NewReader(body))
	if err != nil {
		return task.Task{}, errors.NetworkError{Op: op, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return task.Task{}, errors.NetworkError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return task.Task{}, errors.NetworkError{Op: op, StatusCode: resp.StatusCode}
	}

	var created task.Task
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return task.Task{}, errors.NetworkError{Op: op, Cause: err}
	}
	return created, nil
}
