package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSession_DefaultTitle(t *testing.T) {
	assert.Equal(t, "New chat", NewSession(1, "  ").Title())
	assert.Equal(t, "Trip plan", NewSession(1, "Trip plan").Title())
}

func TestLimits_Check(t *testing.T) {
	l := Limits{PerSession: 20, PerUser: 1000}

	assert.NoError(t, l.Check(0, 0))
	assert.NoError(t, l.Check(999, 19))
	assert.ErrorIs(t, l.Check(10, 20), ErrSessionLimitReached)
	assert.ErrorIs(t, l.Check(1000, 5), ErrUserLimitReached)
	assert.ErrorIs(t, l.Check(1000, 20), ErrUserLimitReached, "user limit is checked first")
	assert.NoError(t, Limits{}.Check(1e6, 1e6))
}
