package service

import "errors"

// Business errors returned to controllers. They are expected outcomes, not
// failures; controllers translate them to HTTP statuses while anything else
// surfaces as a generic 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrAttemptsExhausted  = errors.New("attempt limit reached for this enrollment")
	ErrAlreadyGraded      = errors.New("attempt has already been graded")
	ErrInvalidCredentials = errors.New("username and password do not match")
	ErrInactiveAccount    = errors.New("account is not active")
	ErrNoActivePeriod     = errors.New("worker is not enrolled in any active period")
)
