package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := newPublicCode()
		require.NoError(t, err)
		require.Len(t, code, 10)
		assert.True(t, strings.HasPrefix(code, "ORD-"))

		for _, ch := range code[4:] {
			assert.Contains(t, publicCodeAlphabet, string(ch))
		}
		seen[code] = true
	}
	// 100 kode dari ruang 32^6, tabrakan praktis mustahil
	assert.Greater(t, len(seen), 95)
}
