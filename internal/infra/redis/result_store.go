package redis

import (
	"context"
	"encoding/json"

	"din8580-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const resultsKey = "quiz:results"

// ResultStore keeps the history as a Redis list, one JSON document per
// result, preserving append order. Entries that no longer parse are
// skipped on load instead of failing the process.
type ResultStore struct {
	client *redis.Client
}

func NewResultStore(client *redis.Client) *ResultStore {
	return &ResultStore{client: client}
}

func (s *ResultStore) Load(ctx context.Context) ([]domain.QuizResult, error) {
	raw, err := s.client.LRange(ctx, resultsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	results := make([]domain.QuizResult, 0, len(raw))
	for _, item := range raw {
		var r domain.QuizResult
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

func (s *ResultStore) Append(ctx context.Context, results []domain.QuizResult) error {
	if len(results) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(results))
	for _, r := range results {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		values = append(values, data)
	}
	return s.client.RPush(ctx, resultsKey, values...).Err()
}

func (s *ResultStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, resultsKey).Err()
}
