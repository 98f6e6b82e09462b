package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("letmein")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPassword("letmein", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("letmein", "not-a-hash"))
}
