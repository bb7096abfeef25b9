package app

import (
	"fmt"

	"din8580-quiz-service/internal/domain"
)

// View is one of the four screens a session can show.
type View int

const (
	ViewStart View = iota
	ViewQuiz
	ViewResult
	ViewTeacher
)

func (v View) String() string {
	switch v {
	case ViewStart:
		return "START"
	case ViewQuiz:
		return "QUIZ"
	case ViewResult:
		return "RESULT"
	case ViewTeacher:
		return "TEACHER"
	}
	// Rendering an unknown view is a programming error, never user input.
	panic(fmt.Sprintf("app: unknown view %d", int(v)))
}

// transitions is the exhaustive table of legal view changes. Anything
// absent here is rejected with domain.ErrInvalidTransition.
var transitions = map[View][]View{
	ViewStart:   {ViewQuiz, ViewTeacher},
	ViewQuiz:    {ViewResult},
	ViewResult:  {ViewStart, ViewTeacher},
	ViewTeacher: {ViewStart},
}

func transition(from, to View) (View, error) {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return to, nil
		}
	}
	return from, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
}
