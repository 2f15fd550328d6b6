package adminauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCorrectPassword(t *testing.T) {
	svc, err := New("sekrit")
	require.NoError(t, err)

	assert.NoError(t, svc.Verify("sekrit"))
}

func TestVerifyWrongPassword(t *testing.T) {
	svc, err := New("sekrit")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify("wrong"), ErrInvalidPassword)
	assert.ErrorIs(t, svc.Verify(""), ErrInvalidPassword)
}

func TestVerifyUnconfigured(t *testing.T) {
	svc, err := New("")
	require.NoError(t, err)

	// No secret means no admin access, not open access
	assert.ErrorIs(t, svc.Verify("anything"), ErrNotConfigured)
	assert.ErrorIs(t, svc.Verify(""), ErrNotConfigured)
}
