package domain

import "fmt"

// QuestionType distinguishes the two question forms the quiz supports.
type QuestionType string

const (
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TrueFalse      QuestionType = "TRUE_FALSE"
)

// Question is one entry of the fixed question bank. CorrectAnswer is always
// a string, even for true/false questions (the literals "true"/"false");
// answers are compared by exact string equality at the submission boundary.
type Question struct {
	ID            int          `json:"id"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
}

// QuizResult records the outcome of a single answer submission.
// Timestamp is unix milliseconds, matching the persisted wire format.
type QuizResult struct {
	QuestionID int   `json:"questionId"`
	IsCorrect  bool  `json:"isCorrect"`
	Timestamp  int64 `json:"timestamp"`
}

// Bank is an ordered, immutable set of questions.
type Bank struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// Validate checks the bank invariants: a non-empty question list, unique
// positive ids, multiple-choice options containing the correct answer exactly
// once, and true/false answers given as the literals "true" or "false".
func (b Bank) Validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("bank %q: %w", b.ID, ErrEmptyBank)
	}
	seen := make(map[int]struct{}, len(b.Questions))
	for _, q := range b.Questions {
		if q.ID <= 0 {
			return fmt.Errorf("bank %q: question id %d is not positive", b.ID, q.ID)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("bank %q: duplicate question id %d", b.ID, q.ID)
		}
		seen[q.ID] = struct{}{}

		switch q.Type {
		case MultipleChoice:
			if len(q.Options) < 2 {
				return fmt.Errorf("bank %q: question %d needs at least 2 options", b.ID, q.ID)
			}
			matches := 0
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					matches++
				}
			}
			if matches != 1 {
				return fmt.Errorf("bank %q: question %d options must contain the correct answer exactly once, found %d", b.ID, q.ID, matches)
			}
		case TrueFalse:
			if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
				return fmt.Errorf("bank %q: question %d true/false answer must be the string \"true\" or \"false\", got %q", b.ID, q.ID, q.CorrectAnswer)
			}
		default:
			return fmt.Errorf("bank %q: question %d has unknown type %q", b.ID, q.ID, q.Type)
		}
	}
	return nil
}

// Question returns the question with the given id, if present.
func (b Bank) Question(id int) (Question, bool) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
