package postgres

import (
	"context"
	"fmt"

	"din8580-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResultStore persists results as rows in quiz_results, ordered by the
// serial id so that load replays the exact append order.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) Load(ctx context.Context) ([]domain.QuizResult, error) {
	rows, err := s.pool.Query(ctx, `SELECT question_id, is_correct, answered_at_ms FROM quiz_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	defer rows.Close()

	var results []domain.QuizResult
	for rows.Next() {
		var r domain.QuizResult
		if err := rows.Scan(&r.QuestionID, &r.IsCorrect, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *ResultStore) Append(ctx context.Context, results []domain.QuizResult) error {
	if len(results) == 0 {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("append results: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range results {
		if _, err := tx.Exec(ctx,
			`INSERT INTO quiz_results (question_id, is_correct, answered_at_ms) VALUES ($1, $2, $3)`,
			r.QuestionID, r.IsCorrect, r.Timestamp,
		); err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (s *ResultStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM quiz_results`)
	return err
}
