package credentials

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	m, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	salt, err := base64.StdEncoding.DecodeString(m.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	hash, err := base64.StdEncoding.DecodeString(m.Hash)
	require.NoError(t, err)
	assert.Len(t, hash, 32)

	assert.True(t, Verify("correct horse battery staple", m.Salt, m.Hash))
	assert.False(t, Verify("correct horse battery staple!", m.Salt, m.Hash))
	assert.False(t, Verify("", m.Salt, m.Hash))
}

func TestHash_SaltIsFreshPerCall(t *testing.T) {
	m1, err := Hash("pw")
	require.NoError(t, err)
	m2, err := Hash("pw")
	require.NoError(t, err)

	assert.NotEqual(t, m1.Salt, m2.Salt)
	assert.NotEqual(t, m1.Hash, m2.Hash)

	// both still verify
	assert.True(t, Verify("pw", m1.Salt, m1.Hash))
	assert.True(t, Verify("pw", m2.Salt, m2.Hash))
}

func TestVerify_MalformedStoredMaterial(t *testing.T) {
	m, err := Hash("pw")
	require.NoError(t, err)

	assert.False(t, Verify("pw", "%%%not-base64%%%", m.Hash))
	assert.False(t, Verify("pw", m.Salt, "%%%not-base64%%%"))
}
