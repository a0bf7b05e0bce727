package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialGenerator(t *testing.T) {
	t.Run("no prefix", func(t *testing.T) {
		g := NewSequential("")
		assert.Equal(t, "0", g.Generate())
		assert.Equal(t, "1", g.Generate())
		assert.Equal(t, "2", g.Generate())
	})

	t.Run("prefix", func(t *testing.T) {
		g := NewSequential("item")
		assert.Equal(t, "item_0", g.Generate())
		assert.Equal(t, "item_1", g.Generate())
	})
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUID("item")
	a := g.Generate()
	b := g.Generate()

	require.True(t, strings.HasPrefix(a, "item_"))
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(strings.TrimPrefix(a, "item_"))
	assert.NoError(t, err)
}
