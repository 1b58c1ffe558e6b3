package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(CodeAlphabet, ch), "unexpected character %q in code %q", ch, code)
		}
	}
}

func TestGenerateCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "expected distinct codes across generations")
}

func TestHash_DeterministicAndHex(t *testing.T) {
	h1 := Hash("some-token")
	h2 := Hash("some-token")
	h3 := Hash("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // sha256 hex
}
