package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	assert.True(t, CheckPassword("Passw0rd!", hash))
	assert.False(t, CheckPassword("WrongPass1!", hash))
	assert.False(t, CheckPassword("passw0rd!", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	second, err := HashPassword("Passw0rd!")
	require.NoError(t, err)

	// Per-hash salt means two hashes of the same password differ, but both
	// still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("Passw0rd!", first))
	assert.True(t, CheckPassword("Passw0rd!", second))
}
