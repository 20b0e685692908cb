package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrMalformedMove = errors.New("malformed move")
	ErrOutOfRange    = errors.New("position is out of range")
	ErrIllegalMove   = errors.New("illegal move")
)
