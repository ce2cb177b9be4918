package types

import (
	"errors"
	"fmt"
)

// CodedError couples a stable, hierarchical pipeline error code with a
// descriptive message. Codes are grouped by pipeline stage, for example
// BP02.INTERSECTION.COPLANAR_UNSUPPORTED or BP07.ASSEMBLY.NON_MANIFOLD_EDGE.
//
// Every published failure of the boolean pipeline carries a code; callers
// match on the code with CodeOf, or on a wrapped sentinel with errors.Is.
type CodedError struct {
	Code    string
	Message string
	Err     error
}

// NewCodedError constructs a CodedError with a formatted message.
func NewCodedError(code, format string, args ...any) *CodedError {
	return &CodedError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapCoded attaches a code to an underlying error.
func WrapCoded(code string, err error) *CodedError {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Message: err.Error(), Err: err}
}

func (e *CodedError) Error() string {
	return e.Code + ": " + e.Message
}

// Unwrap returns the underlying error, if any.
func (e *CodedError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the stable code from err, or "" when err carries none.
func CodeOf(err error) string {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
