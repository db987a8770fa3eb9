package domain

import "errors"

var (
	// ErrJudgmentInFlight indicates another comment is already being judged.
	// Only one judgment may be in flight across the whole tree.
	ErrJudgmentInFlight = errors.New("a judgment is already in flight")

	// ErrProtestInFlight indicates a protest turn is still awaiting its response.
	ErrProtestInFlight = errors.New("a protest turn is already in flight")

	// ErrEmptyProtest indicates the user submitted an empty protest message.
	ErrEmptyProtest = errors.New("protest message cannot be empty")
)
