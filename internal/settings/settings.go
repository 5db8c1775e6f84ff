// Package settings persists the console's credential records: large-model
// API credentials and platform crawler cookies. The records are
// configuration the dashboard stores on the user's behalf; nothing in the
// console reads them back for actual use.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dcm-mcn/console/internal/errors"
)

const (
	modelsFile  = "large_models.json"
	cookiesFile = "crawler_cookies.json"
)

// ModelCredential is a stored large-model API credential.
type ModelCredential struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIURL string `json:"apiUrl"`
	APIKey string `json:"apiKey"`
}

// CrawlerCookie is a stored platform cookie for the crawler.
type CrawlerCookie struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Cookie   string `json:"cookie"`
}

// Store persists both record lists as JSON files in a state directory.
// Writes are read-modify-write with last-writer-wins semantics, matching
// the unsynchronized key-value storage this replaces.
type Store struct {
	basePath string
}

// NewStore creates a Store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Models returns all stored model credentials. A missing or corrupt file
// reads as an empty list.
func (s *Store) Models() []ModelCredential {
	var models []ModelCredential
	loadList(s.modelsPath(), &models)
	return models
}

// AddModel validates and appends a model credential, assigning its ID.
func (s *Store) AddModel(name, apiURL, apiKey string) (ModelCredential, error) {
	if strings.TrimSpace(name) == "" {
		return ModelCredential{}, errors.MissingFieldError{Field: "name"}
	}
	if strings.TrimSpace(apiURL) == "" {
		return ModelCredential{}, errors.MissingFieldError{Field: "apiUrl"}
	}
	if strings.TrimSpace(apiKey) == "" {
		return ModelCredential{}, errors.MissingFieldError{Field: "apiKey"}
	}

	m := ModelCredential{ID: uuid.NewString(), Name: name, APIURL: apiURL, APIKey: apiKey}
	models := append(s.Models(), m)
	if err := saveList(s.modelsPath(), models); err != nil {
		return ModelCredential{}, err
	}
	return m, nil
}

// DeleteModel removes the credential with the given ID. Unknown IDs are a
// no-op, as they are in the dialog this mirrors.
func (s *Store) DeleteModel(id string) error {
	models := s.Models()
	kept := models[:0]
	for _, m := range models {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return saveList(s.modelsPath(), kept)
}

// UpdateModel replaces the stored credential with the same ID. Unknown IDs
// are a no-op.
func (s *Store) UpdateModel(m ModelCredential) error {
	models := s.Models()
	for i := range models {
		if models[i].ID == m.ID {
			models[i] = m
		}
	}
	return saveList(s.modelsPath(), models)
}

// Cookies returns all stored crawler cookies. A missing or corrupt file
// reads as an empty list.
func (s *Store) Cookies() []CrawlerCookie {
	var cookies []CrawlerCookie
	loadList(s.cookiesPath(), &cookies)
	return cookies
}

// AddCookie validates and appends a crawler cookie, assigning its ID.
func (s *Store) AddCookie(platform, cookie string) (CrawlerCookie, error) {
	if strings.TrimSpace(platform) == "" {
		return CrawlerCookie{}, errors.MissingFieldError{Field: "platform"}
	}
	if strings.TrimSpace(cookie) == "" {
		return CrawlerCookie{}, errors.MissingFieldError{Field: "cookie"}
	}

	c := CrawlerCookie{ID: uuid.NewString(), Platform: platform, Cookie: cookie}
	cookies := append(s.Cookies(), c)
	if err := saveList(s.cookiesPath(), cookies); err != nil {
		return CrawlerCookie{}, err
	}
	return c, nil
}

// UpdateCookie replaces the stored cookie with the same ID. Unknown IDs are
// a no-op.
func (s *Store) UpdateCookie(c CrawlerCookie) error {
	cookies := s.Cookies()
	for i := range cookies {
		if cookies[i].ID == c.ID {
			cookies[i] = c
		}
	}
	return saveList(s.cookiesPath(), cookies)
}

// DeleteCookie removes the cookie with the given ID.
func (s *Store) DeleteCookie(id string) error {
	cookies := s.Cookies()
	kept := cookies[:0]
	for _, c := range cookies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return saveList(s.cookiesPath(), kept)
}

func (s *Store) modelsPath() string {
	return filepath.Join(s.basePath, modelsFile)
}

func (s *Store) cookiesPath() string {
	return filepath.Join(s.basePath, cookiesFile)
}

// loadList fills out from a JSON file, treating missing or malformed
// content as empty.
func loadList(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

func saveList(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
