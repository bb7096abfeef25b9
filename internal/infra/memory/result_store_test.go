package memory

import (
	"context"
	"testing"

	"din8580-quiz-service/internal/domain"
)

func TestResultStoreAppendLoadClear(t *testing.T) {
	ctx := context.Background()
	store := NewResultStore()

	batch1 := []domain.QuizResult{
		{QuestionID: 1, IsCorrect: true, Timestamp: 100},
		{QuestionID: 2, IsCorrect: false, Timestamp: 200},
	}
	batch2 := []domain.QuizResult{
		{QuestionID: 1, IsCorrect: false, Timestamp: 300},
	}

	if err := store.Append(ctx, batch1); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, batch2); err != nil {
		t.Fatalf("append: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 3 || loaded[0].Timestamp != 100 || loaded[2].Timestamp != 300 {
		t.Fatalf("expected ordered merge of both batches, got %+v", loaded)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty store after clear, got %d", len(loaded))
	}
}

func TestResultStoreLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewResultStore()
	_ = store.Append(ctx, []domain.QuizResult{{QuestionID: 1, IsCorrect: true}})

	loaded, _ := store.Load(ctx)
	loaded[0].QuestionID = 99

	again, _ := store.Load(ctx)
	if again[0].QuestionID != 1 {
		t.Fatalf("load must not expose internal state, got %+v", again)
	}
}
