// Package store implements the file-backed system of record for tasks.
// The backing file holds a single JSON array of task records; reads are
// snapshots and all-or-nothing, writes rewrite the whole array under an
// exclusive lock.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"syscall"
	"time"

	dcmerrors "github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

// Store handles task file operations.
type Store struct {
	filePath string
}

// New creates a Store backed by the given file path.
func New(filePath string) *Store {
	return &Store{filePath: filePath}
}

// FilePath returns the path of the backing file.
func (s *Store) FilePath() string {
	return s.filePath
}

// LoadAll returns every task in the store, in file order. If the file is
// missing, unreadable, malformed, or contains any record that fails
// validation, it returns StoreUnavailableError and no records.
func (s *Store) LoadAll() ([]task.Task, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: readReason(err)}
	}
	return s.decodeAll(data)
}

// Exists checks if a task with the given ID exists. An unreadable store
// reports false; callers that need the distinction use LoadAll.
func (s *Store) Exists(id string) bool {
	tasks, err := s.LoadAll()
	if err != nil {
		return false
	}
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Append validates the task and adds it to the end of the store. A missing
// file is created on first append; a malformed existing file fails the
// append with the same all-or-nothing discipline as reads.
func (s *Store) Append(t task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	return s.withFileLock(func(file *os.File) error {
		data, err := readLocked(file)
		if err != nil {
			return dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: err.Error()}
		}

		tasks := []task.Task{}
		if len(data) > 0 {
			tasks, err = s.decodeAll(data)
			if err != nil {
				return err
			}
		}

		for _, existing := range tasks {
			if existing.ID == t.ID {
				return dcmerrors.TaskExistsError{ID: t.ID}
			}
		}

		tasks = append(tasks, t)
		return writeLocked(file, tasks)
	})
}

// Create assembles a task from a creation payload, assigns it a unique ID,
// and appends it. Status defaults to todo and priority to medium when unset.
func (s *Store) Create(title, description string, status task.Status, priority task.Priority, label string) (task.Task, error) {
	if status == "" {
		status = task.StatusTodo
	}
	if priority == "" {
		priority = task.DefaultPriority
	}

	t := task.Task{
		ID:          task.GenerateID(title, time.Now().UTC(), s.Exists),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		Label:       label,
	}

	if err := s.Append(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// decodeAll parses and validates a JSON array of task records.
func (s *Store) decodeAll(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: "malformed task file: " + err.Error()}
	}
	// A JSON "null" unmarshals to a nil slice without error; the contract
	// promises an array.
	if tasks == nil {
		return nil, dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: "malformed task file: expected a JSON array"}
	}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: err.Error()}
		}
		if seen[t.ID] {
			return nil, dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: "duplicate task id: " + t.ID}
		}
		seen[t.ID] = true
	}
	return tasks, nil
}

// withFileLock executes a function with the backing file exclusively locked.
func (s *Store) withFileLock(fn func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: err.Error()}
	}

	file, err := os.OpenFile(s.filePath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: err.Error()}
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return dcmerrors.StoreUnavailableError{Path: s.filePath, Reason: "failed to lock file: " + err.Error()}
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}

// readLocked reads the full contents of an already-locked file.
func readLocked(file *os.File) ([]byte, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, nil
	}

	data := make([]byte, info.Size())
	if _, err := file.ReadAt(data, 0); err != nil {
		return nil, err
	}
	return data, nil
}

// writeLocked replaces the contents of an already-locked file.
func writeLocked(file *os.File, tasks []task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := file.Truncate(0); err != nil {
		return err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return err
	}
	_, err = file.Write(data)
	return err
}

// readReason maps a read error to a stable store-unavailable message.
func readReason(err error) string {
	if os.IsNotExist(err) {
		return "file does not exist"
	}
	return err.Error()
}
