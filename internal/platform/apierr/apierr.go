package apierr

import "fmt"

// Error carries an HTTP status and a short machine-readable code across the
// service boundary so the response layer can map it without a sentinel per
// status. The wrapped cause stays reachable through errors.As/Is.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	case e.Status != 0:
		return fmt.Sprintf("api error (%d)", e.Status)
	default:
		return "api error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the status and code the HTTP layer should respond with.
func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
