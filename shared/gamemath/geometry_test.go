package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), true},
		{"partial", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 2, 2), true},
		{"shared right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"shared bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"corner touch", NewRect(0, 0, 10, 10), NewRect(10, 10, 5, 5), false},
		{"apart", NewRect(0, 0, 10, 10), NewRect(50, 50, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestSeparationPicksShallowAxis(t *testing.T) {
	floor := NewRect(0, 270, 240, 12)

	// Player sunk 3px into the floor.
	player := NewRect(12, 255, 14, 18)
	dx, dy, ok := Separation(player, floor)
	require.True(t, ok)
	assert.Equal(t, 0.0, dx)
	assert.InDelta(t, -3.0, dy, 1e-9)

	// Body pushed into the left face of a wall.
	wall := NewRect(100, 0, 20, 200)
	body := NewRect(88, 50, 14, 18)
	dx, dy, ok = Separation(body, wall)
	require.True(t, ok)
	assert.InDelta(t, -2.0, dx, 1e-9)
	assert.Equal(t, 0.0, dy)

	// Body entering from the right face.
	body = NewRect(118, 50, 14, 18)
	dx, _, ok = Separation(body, wall)
	require.True(t, ok)
	assert.InDelta(t, 2.0, dx, 1e-9)

	// Body hitting a ceiling from below.
	ceiling := NewRect(0, 0, 240, 12)
	body = NewRect(40, 10, 14, 18)
	dx, dy, ok = Separation(body, ceiling)
	require.True(t, ok)
	assert.Equal(t, 0.0, dx)
	assert.InDelta(t, 2.0, dy, 1e-9)
}

func TestSeparationTieFavorsHorizontal(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(8, 8, 10, 10)
	dx, dy, ok := Separation(a, b)
	require.True(t, ok)
	assert.InDelta(t, -2.0, dx, 1e-9)
	assert.Equal(t, 0.0, dy)
}

func TestSeparationIdempotentWhenApart(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 0, 10, 10)
	dx, dy, ok := Separation(a, b)
	assert.False(t, ok)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	// Applying a separation leaves the pair touching, and a second pass is a no-op.
	c := NewRect(5, 2, 10, 10)
	dx, dy, ok = Separation(c, b)
	require.True(t, ok)
	c.X += dx
	c.Y += dy
	_, _, again := Separation(c, b)
	assert.False(t, again)
}

func TestRectContains(t *testing.T) {
	world := NewRect(0, 0, 240, 282)
	assert.True(t, world.Contains(NewRect(0, 0, 240, 282)))
	assert.True(t, world.Contains(NewRect(12, 12, 14, 18)))
	assert.False(t, world.Contains(NewRect(230, 12, 14, 18)))
	assert.False(t, world.Contains(NewRect(-1, 0, 5, 5)))
}
