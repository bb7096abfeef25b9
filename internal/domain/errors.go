package domain

import "errors"

var (
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrEmptyBank indicates a bank with no questions; the quiz cannot run without content.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrInvalidTransition is returned for a screen change outside the transition table.
	ErrInvalidTransition = errors.New("invalid view transition")
	// ErrNoActiveRun is returned when a quiz operation arrives outside an active run.
	ErrNoActiveRun = errors.New("no active quiz run")
	// ErrRunFinished is returned when an operation reaches a run that already terminated.
	ErrRunFinished = errors.New("quiz run already finished")
	// ErrClearNotConfirmed is returned when a history clear arrives without explicit confirmation.
	ErrClearNotConfirmed = errors.New("clear requires explicit confirmation")
)
