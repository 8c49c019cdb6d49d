package core

import (
	"errors"
	"fmt"
)

// Rejection reasons. A rejected call never mutates the grid.
var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrBlocked          = errors.New("blocked")
	ErrPushBlocked      = errors.New("push blocked")
	ErrLocked           = errors.New("line is anchored")
	ErrEdgeOverflow     = errors.New("player would be shoved off the map")
	ErrBoardFull        = errors.New("line is full")
	ErrNoShiftsLeft     = errors.New("no shifts left")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrStageOver        = errors.New("stage is over")
)

// RejectError wraps a rejection reason with the operation that produced it.
type RejectError struct {
	Op  string
	Err error
}

func (e *RejectError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RejectError) Unwrap() error {
	return e.Err
}

func reject(op string, reason error) error {
	return &RejectError{Op: op, Err: reason}
}

// IsRejection reports whether err is an expected, recoverable rejection.
func IsRejection(err error) bool {
	var re *RejectError
	return errors.As(err, &re)
}

// Load error codes.
const (
	CodeBadDimensions = "BAD_DIMENSIONS"
	CodeLayerSize     = "LAYER_SIZE"
	CodeNoStart       = "NO_START"
	CodeMultipleStart = "MULTIPLE_START"
	CodeStartBlocked  = "START_BLOCKED"
	CodeBadSnapshot   = "BAD_SNAPSHOT"
)

// LoadError reports malformed stage data. No partially built grid is returned with it.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func loadErrorf(code, format string, args ...any) error {
	return &LoadError{Code: code, Message: fmt.Sprintf(format, args...)}
}
