package randomstringgenerator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenLength(t *testing.T) {
	g := NewGenerator()
	token := g.GenerateSessionToken()
	assert.Len(t, string(token), 32)
}

func TestSessionTokensDiffer(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[string(g.GenerateSessionToken())] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
