package app

import (
	"time"

	"din8580-quiz-service/internal/domain"
)

// Phase is the state of a run with respect to the current question.
type Phase int

const (
	// AwaitingSelection means no answer has been picked for the current question.
	AwaitingSelection Phase = iota
	// Selected means an answer is picked but not yet submitted.
	Selected
	// Answered means the current question has been scored.
	Answered
	// Finished is terminal; the run has emitted its results.
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingSelection:
		return "awaiting-selection"
	case Selected:
		return "selected"
	case Answered:
		return "answered"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Run walks one learner through the question bank in order. It is not safe
// for concurrent use; the owning Session serializes access.
type Run struct {
	bank     domain.Bank
	now      func() time.Time
	index    int
	selected string
	answered bool
	finished bool
	results  []domain.QuizResult
}

// NewRun starts a run over the given bank. The bank must be validated by
// the caller; an empty bank is a configuration error, not a runtime case.
func NewRun(bank domain.Bank) *Run {
	return NewRunWithClock(bank, time.Now)
}

// NewRunWithClock allows deterministic timestamps in tests.
func NewRunWithClock(bank domain.Bank, now func() time.Time) *Run {
	if len(bank.Questions) == 0 {
		panic("app: run over empty question bank")
	}
	return &Run{bank: bank, now: now, results: make([]domain.QuizResult, 0, len(bank.Questions))}
}

// Question returns the question currently presented.
func (r *Run) Question() domain.Question {
	return r.bank.Questions[r.index]
}

// Index returns the zero-based position of the current question.
func (r *Run) Index() int { return r.index }

// Total returns the number of questions in the run.
func (r *Run) Total() int { return len(r.bank.Questions) }

// Phase reports where the run stands for the current question.
func (r *Run) Phase() Phase {
	switch {
	case r.finished:
		return Finished
	case r.answered:
		return Answered
	case r.selected != "":
		return Selected
	}
	return AwaitingSelection
}

// Progress is the completed fraction in [0,1). It deliberately counts only
// questions already advanced past, so it reaches 1 conceptually at Finished
// and never before the last question is entered.
func (r *Run) Progress() float64 {
	return float64(r.index) / float64(len(r.bank.Questions))
}

// Select stores the learner's current pick. Selecting again before Submit
// overwrites the previous pick; after the question is answered (or the run
// finished) Select is a silent no-op.
func (r *Run) Select(answer string) {
	if r.answered || r.finished {
		return
	}
	r.selected = answer
}

// Submit scores the current selection by exact string comparison against
// the question's CorrectAnswer (true/false questions compare the literals
// "true"/"false"). It records exactly one result per question: without a
// selection, or after the question was already answered, it is a no-op and
// reports ok=false.
func (r *Run) Submit() (correct bool, ok bool) {
	if r.finished || r.answered || r.selected == "" {
		return false, false
	}
	q := r.Question()
	correct = r.selected == q.CorrectAnswer
	r.results = append(r.results, domain.QuizResult{
		QuestionID: q.ID,
		IsCorrect:  correct,
		Timestamp:  r.now().UnixMilli(),
	})
	r.answered = true
	return correct, true
}

// Advance moves to the next question, clearing the per-question selection
// state. From the last question it terminates the run and yields the full
// ordered result list; the run accepts no operations afterwards.
func (r *Run) Advance() (results []domain.QuizResult, done bool) {
	if r.finished {
		return nil, true
	}
	if r.index < len(r.bank.Questions)-1 {
		r.index++
		r.selected = ""
		r.answered = false
		return nil, false
	}
	r.finished = true
	return r.results, true
}
