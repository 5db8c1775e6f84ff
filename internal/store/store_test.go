//nolint:testpackage // Tests require internal access for thorough testing
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcmerrors "github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"))
}

func writeFile(t *testing.T, s *Store, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.FilePath(), []byte(content), 0o644))
}

func TestLoadAllPreservesFileOrder(t *testing.T) {
	s := testStore(t)
	writeFile(t, s, `[
  {"id": "TASK-B", "title": "second alphabetically, first in file", "status": "done", "priority": "low"},
  {"id": "TASK-A", "title": "first alphabetically, second in file", "status": "todo", "priority": "high"}
]`)

	tasks, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "TASK-B", tasks[0].ID)
	assert.Equal(t, "TASK-A", tasks[1].ID)
	assert.Equal(t, task.StatusDone, tasks[0].Status)
	assert.Equal(t, task.PriorityHigh, tasks[1].Priority)
}

func TestLoadAllMissingFile(t *testing.T) {
	s := testStore(t)

	tasks, err := s.LoadAll()
	assert.Nil(t, tasks)
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "file does not exist", unavailable.Reason)
}

func TestLoadAllMalformedJSON(t *testing.T) {
	s := testStore(t)
	writeFile(t, s, `{"not": "an array"`)

	tasks, err := s.LoadAll()
	assert.Nil(t, tasks)
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestLoadAllRejectsNullFile(t *testing.T) {
	s := testStore(t)
	writeFile(t, s, `null`)

	tasks, err := s.LoadAll()
	assert.Nil(t, tasks)
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Reason, "expected a JSON array")
}

func TestLoadAllRejectsWholeSetOnOneBadRecord(t *testing.T) {
	s := testStore(t)
	writeFile(t, s, `[
  {"id": "TASK-1", "title": "fine", "status": "todo", "priority": "medium"},
  {"id": "TASK-2", "title": "broken", "status": "archived", "priority": "medium"}
]`)

	tasks, err := s.LoadAll()
	assert.Nil(t, tasks, "a single invalid record must fail the whole read")
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestLoadAllRejectsDuplicateIDs(t *testing.T) {
	s := testStore(t)
	writeFile(t, s, `[
  {"id": "TASK-1", "title": "one", "status": "todo", "priority": "medium"},
  {"id": "TASK-1", "title": "two", "status": "todo", "priority": "medium"}
]`)

	_, err := s.LoadAll()
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Reason, "duplicate task id")
}

func TestAppendCreatesMissingFile(t *testing.T) {
	s := testStore(t)

	err := s.Append(task.Task{
		ID:       "TASK-AB12",
		Title:    "first task",
		Status:   task.StatusTodo,
		Priority: task.PriorityMedium,
		Label:    task.LabelContentAnalysis,
	})
	require.NoError(t, err)

	tasks, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "TASK-AB12", tasks[0].ID)
	assert.Equal(t, task.LabelContentAnalysis, tasks[0].Label)
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	s := testStore(t)

	for _, id := range []string{"TASK-3", "TASK-1", "TASK-2"} {
		require.NoError(t, s.Append(task.Task{
			ID:       id,
			Title:    "task " + id,
			Status:   task.StatusTodo,
			Priority: task.PriorityMedium,
		}))
	}

	tasks, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "TASK-3", tasks[0].ID)
	assert.Equal(t, "TASK-1", tasks[1].ID)
	assert.Equal(t, "TASK-2", tasks[2].ID)
}

func TestAppendRejectsDuplicateID(t *testing.T) {
	s := testStore(t)

	tk := task.Task{ID: "TASK-X", Title: "t", Status: task.StatusTodo, Priority: task.PriorityLow}
	require.NoError(t, s.Append(tk))

	err := s.Append(tk)
	var exists dcmerrors.TaskExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "TASK-X", exists.ID)
}

func TestAppendRejectsInvalidTask(t *testing.T) {
	s := testStore(t)

	err := s.Append(task.Task{ID: "TASK-Y", Title: "t", Status: "bogus", Priority: task.PriorityLow})
	var verr dcmerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	// Nothing was written
	_, err = s.LoadAll()
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestAppendFailsOnMalformedExistingFile(t *testing.T) {
	s := testStore(t)
	writeFile(t, s, `not json`)

	err := s.Append(task.Task{ID: "TASK-Z", Title: "t", Status: task.StatusTodo, Priority: task.PriorityLow})
	var unavailable dcmerrors.StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	s := testStore(t)

	created, err := s.Create("Reach out to top creator", "notes", "", "", task.LabelInfluencerExpansion)
	require.NoError(t, err)
	assert.Regexp(t, `^TASK-[0-9A-Z]{4,8}$`, created.ID)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, task.PriorityMedium, created.Priority)

	tasks, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}

func TestExists(t *testing.T) {
	s := testStore(t)
	assert.False(t, s.Exists("TASK-1"), "missing store reports false")

	require.NoError(t, s.Append(task.Task{ID: "TASK-1", Title: "t", Status: task.StatusTodo, Priority: task.PriorityLow}))
	assert.True(t, s.Exists("TASK-1"))
	assert.False(t, s.Exists("TASK-2"))
}
