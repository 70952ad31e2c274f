package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokens_ConsumeIsSingleUse(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "sam@mail.test", time.Minute)

	assert.Equal(t, "sam@mail.test", s.Consume("tok"))
	assert.Equal(t, "", s.Consume("tok"))
}

func TestResetTokens_Expiry(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "sam@mail.test", -time.Second)

	assert.Equal(t, "", s.Consume("tok"))
}

func TestResetTokens_PeekDoesNotConsume(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok", "sam@mail.test", time.Minute)

	email, ok := s.Peek("tok")
	assert.True(t, ok)
	assert.Equal(t, "sam@mail.test", email)

	assert.Equal(t, "sam@mail.test", s.Consume("tok"))
}

func TestResetTokens_UnknownToken(t *testing.T) {
	s := NewResetTokens()

	_, ok := s.Peek("missing")
	assert.False(t, ok)
	assert.Equal(t, "", s.Consume("missing"))
}
