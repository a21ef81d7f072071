package models

import "errors"

// Domain errors. Services return these; handlers map them to rendered pages
// with errors.Is. Anything outside this set is treated as a storage fault:
// logged with detail, shown to the user as a generic failure.
var (
	ErrValidation         = errors.New("missing required field")
	ErrDuplicateIdentity  = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access denied")
)
