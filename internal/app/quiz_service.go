package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"din8580-quiz-service/internal/domain"
)

// ResultStore abstracts where the historical result collection lives
// (JSON file, Redis, Postgres, in-memory for tests). Load tolerates
// malformed persisted data by returning an empty history; Append keeps
// results in the exact order they were produced.
type ResultStore interface {
	Load(ctx context.Context) ([]domain.QuizResult, error)
	Append(ctx context.Context, results []domain.QuizResult) error
	Clear(ctx context.Context) error
}

// BankRepository loads question bank content (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// QuizService owns the shared collaborators and spawns one Session per
// learner connection.
type QuizService struct {
	store  ResultStore
	banks  BankRepository
	bankID string
}

func NewQuizService(store ResultStore, banks BankRepository, bankID string) *QuizService {
	return &QuizService{store: store, banks: banks, bankID: bankID}
}

// NewSession loads and validates the bank and returns a session sitting on
// the start screen.
func (s *QuizService) NewSession(ctx context.Context) (*Session, error) {
	return s.NewSessionWithClock(ctx, time.Now)
}

// NewSessionWithClock is exported for deterministic timestamps in tests.
func (s *QuizService) NewSessionWithClock(ctx context.Context, now func() time.Time) (*Session, error) {
	bank, err := s.banks.GetBank(ctx, s.bankID)
	if err != nil {
		return nil, err
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &Session{svc: s, bank: bank, view: ViewStart, now: now}, nil
}

// Report loads the full history and aggregates it for the teacher view.
func (s *QuizService) Report(ctx context.Context) (Report, error) {
	bank, err := s.banks.GetBank(ctx, s.bankID)
	if err != nil {
		return Report{}, err
	}
	results, err := s.store.Load(ctx)
	if err != nil {
		return Report{}, err
	}
	return Aggregate(bank, results), nil
}

// ClearHistory wipes the persisted result collection. The confirmed flag is
// the boundary to the blocking yes/no prompt: callers must have collected a
// definite yes before this runs.
func (s *QuizService) ClearHistory(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrClearNotConfirmed
	}
	return s.store.Clear(ctx)
}

// QuestionView is the question as presented to the learner. The correct
// answer and explanation are withheld until the answer is submitted.
type QuestionView struct {
	Index    int                 `json:"index"`
	Total    int                 `json:"total"`
	Progress float64             `json:"progress"`
	ID       int                 `json:"id"`
	Type     domain.QuestionType `json:"type"`
	Text     string              `json:"text"`
	Options  []string            `json:"options,omitempty"`
}

// Feedback is shown after a submission, regardless of correctness.
type Feedback struct {
	QuestionID    int    `json:"questionId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// RunSummary is the result screen payload for one completed run.
type RunSummary struct {
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
	Score   string `json:"score"`
}

// Session drives one learner through the four screens. All quiz state
// transitions happen synchronously under the session lock.
type Session struct {
	mu   sync.Mutex
	svc  *QuizService
	bank domain.Bank
	now  func() time.Time

	view View
	run  *Run
	last []domain.QuizResult
}

// View reports the screen the session currently shows.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// StartQuiz moves START -> QUIZ and begins a fresh run.
func (s *Session) StartQuiz() (QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transition(s.view, ViewQuiz)
	if err != nil {
		return QuestionView{}, err
	}
	s.view = next
	s.run = NewRunWithClock(s.bank, s.now)
	return s.questionViewLocked(), nil
}

// SelectAnswer stores the learner's pick for the current question.
// Re-selection before submit overwrites; selection after the answer is
// locked is silently ignored, mirroring disabled controls.
func (s *Session) SelectAnswer(answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewQuiz || s.run == nil {
		return domain.ErrNoActiveRun
	}
	s.run.Select(answer)
	return nil
}

// SubmitAnswer scores the current selection. ok is false when the call was
// a no-op (nothing selected, or the question was already answered).
func (s *Session) SubmitAnswer() (fb Feedback, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewQuiz || s.run == nil {
		return Feedback{}, false, domain.ErrNoActiveRun
	}
	correct, ok := s.run.Submit()
	if !ok {
		return Feedback{}, false, nil
	}
	q := s.run.Question()
	return Feedback{
		QuestionID:    q.ID,
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}, true, nil
}

// Advance moves to the next question, or finishes the run: the result list
// is appended to the store (best-effort) and the session lands on RESULT.
// Exactly one of next and summary is non-nil.
func (s *Session) Advance(ctx context.Context) (next *QuestionView, summary *RunSummary, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewQuiz || s.run == nil {
		return nil, nil, domain.ErrNoActiveRun
	}

	results, done := s.run.Advance()
	if !done {
		qv := s.questionViewLocked()
		return &qv, nil, nil
	}

	view, err := transition(s.view, ViewResult)
	if err != nil {
		return nil, nil, err
	}
	s.view = view
	s.last = results
	s.run = nil

	// Persistence is best-effort educational telemetry; a write failure
	// must not block the learner's result screen.
	if err := s.svc.store.Append(ctx, results); err != nil {
		log.Printf("append results: %v", err)
	}

	sum := summarize(results, len(s.bank.Questions))
	return nil, &sum, nil
}

// Summary returns the held result of the last completed run while the
// session is on the result screen.
func (s *Session) Summary() (RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewResult {
		return RunSummary{}, fmt.Errorf("%w: no summary on %s", domain.ErrInvalidTransition, s.view)
	}
	return summarize(s.last, len(s.bank.Questions)), nil
}

// Restart moves RESULT -> START, discarding the held run results.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, err := transition(s.view, ViewStart)
	if err != nil {
		return err
	}
	s.view = view
	s.last = nil
	return nil
}

// OpenStats moves to TEACHER (legal from START and RESULT) and returns the
// aggregated report.
func (s *Session) OpenStats(ctx context.Context) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, err := transition(s.view, ViewTeacher)
	if err != nil {
		return Report{}, err
	}
	report, err := s.svc.Report(ctx)
	if err != nil {
		return Report{}, err
	}
	s.view = view
	return report, nil
}

// Back moves TEACHER -> START.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, err := transition(s.view, ViewStart)
	if err != nil {
		return err
	}
	s.view = view
	return nil
}

// ClearHistory wipes the history from the teacher screen. The destructive
// action requires the caller to pass an explicit confirmation.
func (s *Session) ClearHistory(ctx context.Context, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewTeacher {
		return fmt.Errorf("%w: clear is only available on %s", domain.ErrInvalidTransition, ViewTeacher)
	}
	return s.svc.ClearHistory(ctx, confirmed)
}

func (s *Session) questionViewLocked() QuestionView {
	q := s.run.Question()
	return QuestionView{
		Index:    s.run.Index(),
		Total:    s.run.Total(),
		Progress: s.run.Progress(),
		ID:       q.ID,
		Type:     q.Type,
		Text:     q.Text,
		Options:  q.Options,
	}
}

func summarize(results []domain.QuizResult, total int) RunSummary {
	correct := 0
	for _, r := range results {
		if r.IsCorrect {
			correct++
		}
	}
	return RunSummary{
		Correct: correct,
		Total:   total,
		Score:   fmt.Sprintf("%d / %d", correct, total),
	}
}
