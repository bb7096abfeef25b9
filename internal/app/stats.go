package app

import (
	"math"

	"din8580-quiz-service/internal/domain"
)

// QuestionStat is the aggregated outcome for one question across all
// recorded results.
type QuestionStat struct {
	QuestionID int    `json:"questionId"`
	Text       string `json:"text"`
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Wrong      int    `json:"wrong"`
	Percentage int    `json:"percentage"`
}

// Report is the teacher view over the full result history.
type Report struct {
	Stats        []QuestionStat `json:"stats"`
	TotalResults int            `json:"totalResults"`
	// EstimatedParticipants assumes every participant answered every
	// question exactly once; abandoned runs skew it. It is an estimate
	// by construction and labeled as such everywhere it is shown.
	EstimatedParticipants int `json:"estimatedParticipants"`
}

// Aggregate computes per-question accuracy over the result history, one
// entry per bank question in bank order. Results referencing unknown
// question ids are ignored. Percentages use round-half-up; a question with
// no results reports exactly 0. The computation is a pure function of its
// inputs and independent of result ordering.
func Aggregate(bank domain.Bank, results []domain.QuizResult) Report {
	if len(bank.Questions) == 0 {
		panic("app: aggregate over empty question bank")
	}

	totals := make(map[int]int, len(bank.Questions))
	corrects := make(map[int]int, len(bank.Questions))
	known := make(map[int]struct{}, len(bank.Questions))
	for _, q := range bank.Questions {
		known[q.ID] = struct{}{}
	}
	for _, r := range results {
		if _, ok := known[r.QuestionID]; !ok {
			continue
		}
		totals[r.QuestionID]++
		if r.IsCorrect {
			corrects[r.QuestionID]++
		}
	}

	stats := make([]QuestionStat, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		total := totals[q.ID]
		correct := corrects[q.ID]
		pct := 0
		if total > 0 {
			pct = int(math.Round(100 * float64(correct) / float64(total)))
		}
		stats = append(stats, QuestionStat{
			QuestionID: q.ID,
			Text:       q.Text,
			Total:      total,
			Correct:    correct,
			Wrong:      total - correct,
			Percentage: pct,
		})
	}

	return Report{
		Stats:                 stats,
		TotalResults:          len(results),
		EstimatedParticipants: int(math.Round(float64(len(results)) / float64(len(bank.Questions)))),
	}
}
