package app

import (
	"math/rand"
	"reflect"
	"testing"

	"din8580-quiz-service/internal/domain"
)

func resultsFor(questionID int, correct, wrong int) []domain.QuizResult {
	out := make([]domain.QuizResult, 0, correct+wrong)
	for i := 0; i < correct; i++ {
		out = append(out, domain.QuizResult{QuestionID: questionID, IsCorrect: true, Timestamp: int64(i)})
	}
	for i := 0; i < wrong; i++ {
		out = append(out, domain.QuizResult{QuestionID: questionID, IsCorrect: false, Timestamp: int64(correct + i)})
	}
	return out
}

func TestAggregateCounts(t *testing.T) {
	bank := domain.DefaultBank()
	results := append(resultsFor(1, 3, 1), resultsFor(2, 0, 2)...)

	report := Aggregate(bank, results)
	if len(report.Stats) != len(bank.Questions) {
		t.Fatalf("expected one stat per question, got %d", len(report.Stats))
	}
	q1 := report.Stats[0]
	if q1.QuestionID != 1 || q1.Total != 4 || q1.Correct != 3 || q1.Wrong != 1 || q1.Percentage != 75 {
		t.Fatalf("unexpected stat for question 1: %+v", q1)
	}
	q2 := report.Stats[1]
	if q2.Total != 2 || q2.Correct != 0 || q2.Percentage != 0 {
		t.Fatalf("unexpected stat for question 2: %+v", q2)
	}
}

func TestAggregateZeroResultsIsZeroPercent(t *testing.T) {
	report := Aggregate(domain.DefaultBank(), nil)
	for _, s := range report.Stats {
		if s.Percentage != 0 || s.Total != 0 {
			t.Fatalf("expected 0%% for unanswered question, got %+v", s)
		}
	}
	if report.EstimatedParticipants != 0 {
		t.Fatalf("expected 0 participants, got %d", report.EstimatedParticipants)
	}
}

func TestAggregateRoundsHalfUp(t *testing.T) {
	// 1 of 8 correct = 12.5%, rounded half-up to 13.
	report := Aggregate(domain.DefaultBank(), resultsFor(1, 1, 7))
	if got := report.Stats[0].Percentage; got != 13 {
		t.Fatalf("expected 12.5%% to round to 13, got %d", got)
	}
	// 1 of 3 correct rounds down to 33, 2 of 3 up to 67.
	if got := Aggregate(domain.DefaultBank(), resultsFor(1, 1, 2)).Stats[0].Percentage; got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := Aggregate(domain.DefaultBank(), resultsFor(1, 2, 1)).Stats[0].Percentage; got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	bank := domain.DefaultBank()
	results := append(resultsFor(1, 2, 3), resultsFor(4, 1, 0)...)
	results = append(results, resultsFor(10, 0, 4)...)

	base := Aggregate(bank, results)

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		shuffled := make([]domain.QuizResult, len(results))
		copy(shuffled, results)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := Aggregate(bank, shuffled); !reflect.DeepEqual(got, base) {
			t.Fatalf("aggregation changed under permutation: %+v vs %+v", got, base)
		}
	}
}

func TestAggregateIgnoresOrphanedResults(t *testing.T) {
	results := []domain.QuizResult{
		{QuestionID: 999, IsCorrect: true},
		{QuestionID: 1, IsCorrect: true},
	}
	report := Aggregate(domain.DefaultBank(), results)
	if report.Stats[0].Total != 1 {
		t.Fatalf("orphaned result leaked into stats: %+v", report.Stats[0])
	}
	// The orphan still counts toward the raw total the estimate is built on.
	if report.TotalResults != 2 {
		t.Fatalf("expected total 2, got %d", report.TotalResults)
	}
}

func TestAggregateEstimatesParticipants(t *testing.T) {
	bank := domain.DefaultBank()
	var results []domain.QuizResult
	for run := 0; run < 3; run++ {
		for _, q := range bank.Questions {
			results = append(results, domain.QuizResult{QuestionID: q.ID, IsCorrect: run%2 == 0})
		}
	}
	// One abandoned half-run skews the estimate; that matches the naive
	// totalResults/totalQuestions formula on purpose.
	for _, q := range bank.Questions[:5] {
		results = append(results, domain.QuizResult{QuestionID: q.ID, IsCorrect: true})
	}

	report := Aggregate(bank, results)
	if report.EstimatedParticipants != 4 { // 35/10 = 3.5, rounds up
		t.Fatalf("expected estimate 4, got %d", report.EstimatedParticipants)
	}
}

func TestAggregatePanicsOnEmptyBank(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty bank")
		}
	}()
	Aggregate(domain.Bank{ID: "empty"}, nil)
}
