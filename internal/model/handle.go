package model

import (
	"regexp"
	"strings"
)

// Handle is a normalized social-media handle uniquely identifying a participant
type Handle string

// MaxHandleLength is the maximum length of a handle after trimming
const MaxHandleLength = 30

// handlePattern restricts handles to letters, digits, dots and underscores
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9._]+$`)

// ParseHandle normalizes and validates a raw user-supplied handle.
// It trims surrounding whitespace and rejects anything outside the
// allow-list pattern: 1-30 chars of [A-Za-z0-9._], no leading or
// trailing dot, no consecutive dots.
// Validation always runs before any store access.
func ParseHandle(raw string) (Handle, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrMissingHandle
	}
	if len(trimmed) > MaxHandleLength {
		return "", ErrInvalidHandle
	}
	if !handlePattern.MatchString(trimmed) {
		return "", ErrInvalidHandle
	}
	if strings.HasPrefix(trimmed, ".") || strings.HasSuffix(trimmed, ".") || strings.Contains(trimmed, "..") {
		return "", ErrInvalidHandle
	}
	return Handle(trimmed), nil
}
