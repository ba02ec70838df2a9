package shared

import "errors"

var (
	// ErrNotFound indicates a referenced row does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation indicates a request failed server-side validation.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate indicates a uniqueness violation.
	ErrDuplicate = errors.New("duplicate entry")
)

// labeled carries a user-facing message while matching a sentinel through
// errors.Is, so the wire text stays clean of internal prefixes.
type labeled struct {
	msg      string
	sentinel error
}

func (e labeled) Error() string        { return e.msg }
func (e labeled) Is(target error) bool { return target == e.sentinel }

// Invalid returns a validation error whose Error() is exactly msg.
func Invalid(msg string) error {
	return labeled{msg: msg, sentinel: ErrValidation}
}

// NotFound returns a not-found error whose Error() is exactly msg.
func NotFound(msg string) error {
	return labeled{msg: msg, sentinel: ErrNotFound}
}

// Duplicate returns a conflict error whose Error() is exactly msg.
func Duplicate(msg string) error {
	return labeled{msg: msg, sentinel: ErrDuplicate}
}
