package apperror

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrIllegalMove     = errors.New("illegal move")
	ErrAlreadyMarked   = errors.New("square is already marked")
	ErrEmptyChoice     = errors.New("cannot pick from an empty set")
	ErrInputClosed     = errors.New("input is closed")
	ErrMatchOver       = errors.New("match is already over")
	ErrInvalidSettings = errors.New("invalid match settings")
)
