package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()

	assert.True(t, strings.HasPrefix(id, "TXN"))
	assert.Equal(t, strings.ToUpper(id), id)
	// base36 millisecond timestamp (8 chars for current dates) plus 6 random chars
	assert.GreaterOrEqual(t, len(id), 3+8+6)

	for _, r := range id[3:] {
		assert.Contains(t, randomSuffixChars, string(r))
	}
}

func TestGenerateTransactionIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateTransactionID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
