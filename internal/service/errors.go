package service

import "errors"

var (
	// ErrNoPlan indicates the user exists but has not created a plan yet.
	// Surfaced to the caller as guidance, not a fault.
	ErrNoPlan = errors.New("no plan for user")

	// ErrNoUser indicates the user identifier is unknown.
	ErrNoUser = errors.New("unknown user")
)
