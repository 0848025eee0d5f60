package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokeAndCheck(t *testing.T) {
	store := NewRevokedTokens()

	assert.False(t, store.IsRevoked("tok"))

	store.Revoke("tok", time.Minute)
	assert.True(t, store.IsRevoked("tok"))
	assert.False(t, store.IsRevoked("other"))
}

func TestRevocationExpires(t *testing.T) {
	store := NewRevokedTokens()

	store.Revoke("tok", 10*time.Millisecond)
	assert.True(t, store.IsRevoked("tok"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.IsRevoked("tok"))
}
