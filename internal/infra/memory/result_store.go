package memory

import (
	"context"
	"sync"

	"din8580-quiz-service/internal/domain"
)

// ResultStore is an in-memory implementation of app.ResultStore, used in
// tests and as the fallback when no durable backend is configured.
type ResultStore struct {
	mu      sync.RWMutex
	results []domain.QuizResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) Load(_ context.Context) ([]domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.QuizResult, len(s.results))
	copy(out, s.results)
	return out, nil
}

func (s *ResultStore) Append(_ context.Context, results []domain.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, results...)
	return nil
}

func (s *ResultStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
	return nil
}
