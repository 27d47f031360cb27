package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandBytes(t *testing.T) {
	a, err := RandBytes(16)
	require.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := RandBytes(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRandBytes_ZeroSize(t *testing.T) {
	b, err := RandBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}
