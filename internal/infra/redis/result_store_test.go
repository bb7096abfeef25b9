package redis

import (
	"context"
	"testing"

	"din8580-quiz-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestResultStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewResultStore(newClient(mr))

	if err := store.Append(ctx, []domain.QuizResult{
		{QuestionID: 1, IsCorrect: true, Timestamp: 100},
		{QuestionID: 2, IsCorrect: false, Timestamp: 200},
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, []domain.QuizResult{
		{QuestionID: 3, IsCorrect: true, Timestamp: 300},
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 3 || loaded[0].QuestionID != 1 || loaded[2].QuestionID != 3 {
		t.Fatalf("expected ordered history, got %+v", loaded)
	}
}

func TestResultStoreSkipsUnparsableEntries(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewResultStore(newClient(mr))
	_ = store.Append(ctx, []domain.QuizResult{{QuestionID: 1, IsCorrect: true, Timestamp: 100}})
	if _, err := mr.RPush(resultsKey, "{broken"); err != nil {
		t.Fatalf("rpush: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].QuestionID != 1 {
		t.Fatalf("expected broken entry skipped, got %+v", loaded)
	}
}

func TestResultStoreClear(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewResultStore(newClient(mr))
	_ = store.Append(ctx, []domain.QuizResult{{QuestionID: 1, IsCorrect: true}})

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists(resultsKey) {
		t.Fatalf("expected redis key removed")
	}
	if loaded, _ := store.Load(ctx); len(loaded) != 0 {
		t.Fatalf("expected empty history after clear")
	}
}
