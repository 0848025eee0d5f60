package utils

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrFamilyNotFound     = errors.New("family not found")
	ErrDonationNotFound   = errors.New("donation not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrVolunteerNotFound  = errors.New("volunteer not found")
	ErrEventFull          = errors.New("event is at capacity")
	ErrRegistrationClosed = errors.New("registration deadline has passed")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError carries a field-level message while still matching
// ErrValidation in errors.Is checks.
func ValidationError(msg string) error {
	return errValidationDetail{msg}
}

type errValidationDetail struct{ msg string }

func (e errValidationDetail) Error() string { return e.msg }

func (e errValidationDetail) Is(target error) bool { return target == ErrValidation }
