package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		assert.True(t, IsGameID(id))
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.False(t, IsGameID("not-an-id"))
}
