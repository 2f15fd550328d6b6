package model

import "errors"

// Common errors used across the application
var (
	// Handle errors
	ErrMissingHandle = errors.New("handle is missing")
	ErrInvalidHandle = errors.New("handle is invalid")

	// Participant errors
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantExists   = errors.New("participant already exists")

	// Code errors
	ErrCodeNotFound = errors.New("code not found")
	ErrCodeExists   = errors.New("code already exists")
	ErrCodeUsed     = errors.New("code is already used")

	// Pool errors
	ErrPoolExhausted = errors.New("no unused codes left in pool")
)
