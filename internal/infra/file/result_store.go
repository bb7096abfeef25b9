// Package file persists the result history as a single JSON document, the
// closest analogue of the original deployment's browser-local storage key.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"din8580-quiz-service/internal/domain"
)

// ResultStore reads and writes the full history in one keyed file. Loads
// are tolerant: an absent or unparsable file is an empty history, never an
// error. There is no versioning or migration; a format change means
// clearing existing data.
type ResultStore struct {
	path string
	mu   sync.Mutex
}

func NewResultStore(path string) *ResultStore {
	return &ResultStore{path: path}
}

func (s *ResultStore) Load(_ context.Context) ([]domain.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(), nil
}

func (s *ResultStore) Append(_ context.Context, results []domain.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := append(s.loadLocked(), results...)
	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *ResultStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *ResultStore) loadLocked() []domain.QuizResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var results []domain.QuizResult
	if err := json.Unmarshal(data, &results); err != nil {
		// Unparsable history is treated as empty rather than failing the
		// process; the data is non-critical telemetry.
		return nil
	}
	return results
}
