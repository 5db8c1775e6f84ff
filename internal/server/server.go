// Package server exposes the task store, login, and settings stores over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dcmerrors "github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/session"
	"github.com/dcm-mcn/console/internal/settings"
	"github.com/dcm-mcn/console/internal/store"
	"github.com/dcm-mcn/console/internal/task"
)

// Server holds the handlers' collaborators.
type Server struct {
	tasks    *store.Store
	session  *session.Session
	settings *settings.Store
	logger   *slog.Logger
}

// New creates a Server. A nil logger defaults to slog's default logger.
func New(tasks *store.Store, sess *session.Session, set *settings.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{tasks: tasks, session: sess, settings: set, logger: logger}
}

// Handler returns the API route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/settings/models", s.handleListModels)
	mux.HandleFunc("POST /api/settings/models", s.handleAddModel)
	mux.HandleFunc("PUT /api/settings/models/{id}", s.handleUpdateModel)
	mux.HandleFunc("DELETE /api/settings/models/{id}", s.handleDeleteModel)
	mux.HandleFunc("GET /api/settings/cookies", s.handleListCookies)
	mux.HandleFunc("POST /api/settings/cookies", s.handleAddCookie)
	mux.HandleFunc("PUT /api/settings/cookies/{id}", s.handleUpdateCookie)
	mux.HandleFunc("DELETE /api/settings/cookies/{id}", s.handleDeleteCookie)
	return mux
}

// handleListTasks serves the full task set in file order.
func (s *Server) handleListTasks(w http.ResponseWriter, _ *http.Request) {
	tasks, err := s.tasks.LoadAll()
	if err != nil {
		s.logger.Error("failed to load tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// createTaskRequest is the write-contract body. The server assigns the ID.
type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Label       string `json:"label"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.tasks.Create(req.Title, req.Description, task.Status(req.Status), task.Priority(req.Priority), req.Label)
	if err != nil {
		var verr dcmerrors.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.logger.Error("failed to create task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.session.Login(req.Email, req.Password)
	if err != nil {
		var rejected dcmerrors.CredentialRejectedError
		if errors.As(err, &rejected) {
			writeError(w, http.StatusUnauthorized, rejected.Error())
			return
		}
		s.logger.Error("failed to persist session", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	if err := s.session.Logout(); err != nil {
		s.logger.Error("failed to clear session", "error", err)
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Models())
}

type addModelRequest struct {
	Name   string `json:"name"`
	APIURL string `json:"apiUrl"`
	APIKey string `json:"apiKey"`
}

func (s *Server) handleAddModel(w http.ResponseWriter, r *http.Request) {
	var req addModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := s.settings.AddModel(req.Name, req.APIURL, req.APIKey)
	if err != nil {
		s.settingsError(w, "add model credential", err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleUpdateModel(w http.ResponseWriter, r *http.Request) {
	var req addModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m := settings.ModelCredential{ID: r.PathValue("id"), Name: req.Name, APIURL: req.APIURL, APIKey: req.APIKey}
	if err := s.settings.UpdateModel(m); err != nil {
		s.settingsError(w, "update model credential", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteModel(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.DeleteModel(r.PathValue("id")); err != nil {
		s.settingsError(w, "delete model credential", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCookies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Cookies())
}

type addCookieRequest struct {
	Platform string `json:"platform"`
	Cookie   string `json:"cookie"`
}

func (s *Server) handleAddCookie(w http.ResponseWriter, r *http.Request) {
	var req addCookieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := s.settings.AddCookie(req.Platform, req.Cookie)
	if err != nil {
		s.settingsError(w, "add crawler cookie", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCookie(w http.ResponseWriter, r *http.Request) {
	var req addCookieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := settings.CrawlerCookie{ID: r.PathValue("id"), Platform: req.Platform, Cookie: req.Cookie}
	if err := s.settings.UpdateCookie(c); err != nil {
		s.settingsError(w, "update crawler cookie", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCookie(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.DeleteCookie(r.PathValue("id")); err != nil {
		s.settingsError(w, "delete crawler cookie", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// settingsError maps settings failures to status codes: missing-field checks
// are the caller's fault, anything else is a storage failure.
func (s *Server) settingsError(w http.ResponseWriter, op string, err error) {
	var missing dcmerrors.MissingFieldError
	if errors.As(err, &missing) {
		writeError(w, http.StatusBadRequest, missing.Error())
		return
	}
	s.logger.Error("settings operation failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, op+" failed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
