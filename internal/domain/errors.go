package domain

import "errors"

// Business error kinds reported by BusinessErrorKind.
const (
	ErrorKind_Validation = "validation"
	ErrorKind_NotFound   = "not_found"
	ErrorKind_Conflict   = "conflict"
)

type domainErr struct {
	message string
}

func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr is returned when a restaurant or booking does not exist.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr is returned for malformed input such as a bad date or phone number.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConflictErr represents an error when the requested change conflicts with the current state,
// e.g. no seating capacity is left for a booking slot.
type ConflictErr struct {
	domainErr
}

// NewConflictErr creates a new ConflictErr with the given message.
func NewConflictErr(message string) *ConflictErr {
	return &ConflictErr{
		domainErr: domainErr{message: message},
	}
}

// BusinessErrorKind reports whether err wraps one of the domain errors above and which one.
// Business errors are answers for the guest, everything else is an infrastructure failure.
func BusinessErrorKind(err error) (string, bool) {
	var (
		validationErr *ValidationErr
		notFoundErr   *NotFoundErr
		conflictErr   *ConflictErr
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrorKind_Validation, true
	case errors.As(err, &notFoundErr):
		return ErrorKind_NotFound, true
	case errors.As(err, &conflictErr):
		return ErrorKind_Conflict, true
	}
	return "", false
}
