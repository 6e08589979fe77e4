package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	first, err := HashPassword("testpass")
	require.NoError(t, err)
	second, err := HashPassword("testpass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must use a fresh salt")
	assert.True(t, strings.HasPrefix(first, "$argon2id$"))
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("testpass")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hash      string
		candidate string
		want      bool
	}{
		{"correct password", hashed, "testpass", true},
		{"appended character", hashed, "testpassx", false},
		{"empty candidate", hashed, "", false},
		{"empty hash", "", "testpass", false},
		{"garbage hash", "not-a-phc-string", "testpass", false},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", "testpass", false},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA", "testpass", false},
		{"bad key encoding", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!", "testpass", false},
		{"wrong version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA", "testpass", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VerifyPassword(tc.hash, tc.candidate))
		})
	}
}

func TestVerifyPasswordEmptySecretRoundTrip(t *testing.T) {
	hashed, err := HashPassword("")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hashed, ""))
	assert.False(t, VerifyPassword(hashed, "x"))
}
