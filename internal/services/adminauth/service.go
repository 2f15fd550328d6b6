package adminauth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Errors
var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrNotConfigured   = errors.New("admin password not configured")
)

// Service gates admin surfaces behind a shared secret. The plaintext
// secret is hashed at construction and never kept around.
type Service struct {
	hash []byte
}

// New creates an adminauth service from the shared secret.
// An empty secret disables admin access entirely rather than leaving it
// open.
func New(password string) (*Service, error) {
	if password == "" {
		return &Service{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{hash: hash}, nil
}

// Verify checks a presented secret against the configured one
func (s *Service) Verify(password string) error {
	if len(s.hash) == 0 {
		return ErrNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
