package carousel

import (
	"testing"

	"homeinsight-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func charts(titles ...string) []models.EvaluationChart {
	out := make([]models.EvaluationChart, 0, len(titles))
	for _, title := range titles {
		out = append(out, models.EvaluationChart{Title: title})
	}
	return out
}

func TestCarouselWrapsForward(t *testing.T) {
	c := New(charts("a", "b", "c"))
	c.Next()
	c.Next()
	c.Next()

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "a", current.Title)
}

func TestCarouselWrapsBackward(t *testing.T) {
	c := New(charts("a", "b", "c"))
	c.Previous()

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "c", current.Title)
}

func TestCarouselEmptyNoOps(t *testing.T) {
	c := New(nil)
	c.Next()
	c.Previous()

	_, ok := c.Current()
	assert.False(t, ok)

	pos, total := c.Position()
	assert.Zero(t, pos)
	assert.Zero(t, total)
}

func TestCarouselPosition(t *testing.T) {
	c := New(charts("a", "b"))
	pos, total := c.Position()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, total)

	c.Next()
	pos, _ = c.Position()
	assert.Equal(t, 2, pos)
}
