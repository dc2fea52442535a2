package errors

import "fmt"

// InternalError covers failures that are neither bad tool input nor a
// remote HTTP error: transport failures, timeouts, JSON encoding.
type InternalError struct {
	message string
}

func (v *InternalError) Error() string {
	return v.message
}

func InternalErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &InternalError{}
