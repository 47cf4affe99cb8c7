package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrProfileNotFound = errors.New("profile not saved yet")
	ErrInvalidInput    = errors.New("invalid input")
	ErrCoachDisabled   = errors.New("coaching service not configured")
)
