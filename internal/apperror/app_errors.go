package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionRequired = errors.New("session id is required")
	ErrNotFound        = errors.New("not found")
)
