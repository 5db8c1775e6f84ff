//nolint:testpackage // Tests require internal access for thorough testing
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcmerrors "github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

func TestListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/tasks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"TASK-1","title":"t","status":"todo","priority":"medium"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "TASK-1", tasks[0].ID)
}

func TestListTasksServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"failed to load tasks"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.ListTasks(context.Background())

	var nerr dcmerrors.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, http.StatusInternalServerError, nerr.StatusCode)
}

func TestListTasksTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, nil)
	_, err := c.ListTasks(context.Background())

	var nerr dcmerrors.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Zero(t, nerr.StatusCode)
	assert.Error(t, nerr.Cause)
}

func TestCreateTask(t *testing.T) {
	var received CreatePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/tasks", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(task.Task{
			ID:          "TASK-9Z8Y",
			Title:       received.Title,
			Description: received.Description,
			Status:      task.Status(received.Status),
			Priority:    task.Priority(received.Priority),
			Label:       received.Label,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	created, err := c.CreateTask(context.Background(), CreatePayload{
		Title:    "[达人拓展] 接洽头部达人",
		Status:   "todo",
		Priority: "high",
		Label:    task.LabelInfluencerExpansion,
	})
	require.NoError(t, err)
	assert.Equal(t, "TASK-9Z8Y", created.ID)
	assert.Equal(t, "[达人拓展] 接洽头部达人", received.Title)
	assert.Equal(t, "todo", received.Status)
}

func TestCreateTaskNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid task"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.CreateTask(context.Background(), CreatePayload{Title: "x"})

	var nerr dcmerrors.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, http.StatusBadRequest, nerr.StatusCode)
}
