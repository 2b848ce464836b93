package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrFormat        = errors.New("invalid format")
	ErrWrongAnswer   = errors.New("wrong answer")
	ErrUnknownPuzzle = errors.New("unknown puzzle")
)

type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindFormat        Kind = "format"
	KindWrongAnswer   Kind = "wrong_answer"
	KindUnknownPuzzle Kind = "unknown_puzzle"
)

// Error carries the operation context of a failed load or check. Msg, when set,
// is the message shown to the user.
type Error struct {
	Op   string
	Kind Kind
	Path string
	Line int // 1-based, zero when not tied to a line
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg != "" {
		return e.Msg
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an *Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrFormat:
		return e.Kind == KindFormat
	case ErrWrongAnswer:
		return e.Kind == KindWrongAnswer
	case ErrUnknownPuzzle:
		return e.Kind == KindUnknownPuzzle
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

func NotFound(op, path string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Path: path,
		Msg:  fmt.Sprintf("The file '%s' was not found.", path),
		Err:  err,
	}
}

// Malformed reports a line of input that does not have the expected shape.
func Malformed(op, path string, line int, msg string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindFormat,
		Path: path,
		Line: line,
		Msg:  msg,
		Err:  err,
	}
}
