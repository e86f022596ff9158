package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	assert.NoError(t, VerifyPassword(hash, "Passw0rd!"))
	assert.Error(t, VerifyPassword(hash, "WrongPass1!"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	second, err := HashPassword("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
