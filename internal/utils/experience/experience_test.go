package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		xp    int
	}{
		{level: 0, xp: 0},
		{level: 1, xp: 17},
		{level: 5, xp: 85},
		{level: 15, xp: 255},
		// First quadratic segment starts here; 272 = 17*16 so the curve is
		// continuous across the boundary.
		{level: 16, xp: 272},
		{level: 17, xp: 292},
		{level: 30, xp: 825},
		// Second segment boundary, again continuous: both formulas give 887.
		{level: 31, xp: 887},
		{level: 32, xp: 956},
		{level: 50, xp: 3395},
		{level: 100, xp: 22070},
	}

	for _, tt := range tests {
		xp, err := XPForLevel(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.xp, xp, "level %d", tt.level)
	}
}

func TestXPForLevelNegative(t *testing.T) {
	_, err := XPForLevel(-1)
	assert.ErrorIs(t, err, ErrNegativeLevel)
}

func TestXPForLevelMonotonic(t *testing.T) {
	prev := 0
	for level := 0; level <= 100; level++ {
		xp, err := XPForLevel(level)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, xp, prev, "level %d", level)
		prev = xp
	}
}

func TestXPBetweenLevels(t *testing.T) {
	diff, err := XPBetweenLevels(0, 15)
	require.NoError(t, err)
	assert.Equal(t, 255, diff)

	// Antisymmetry: walking back down is the exact negative.
	for _, pair := range [][2]int{{0, 1}, {3, 27}, {15, 16}, {30, 31}, {40, 12}} {
		up, err := XPBetweenLevels(pair[0], pair[1])
		require.NoError(t, err)
		down, err := XPBetweenLevels(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, -up, down)
	}

	_, err = XPBetweenLevels(-1, 5)
	assert.ErrorIs(t, err, ErrNegativeLevel)
	_, err = XPBetweenLevels(5, -1)
	assert.ErrorIs(t, err, ErrNegativeLevel)
}

func TestLevelForXPRoundTrip(t *testing.T) {
	for level := 0; level <= 100; level++ {
		xp, err := XPForLevel(level)
		require.NoError(t, err)

		got, err := LevelForXP(xp)
		require.NoError(t, err)
		assert.Equal(t, level, got, "xp %d", xp)
	}
}

func TestLevelForXPNeverOvershoots(t *testing.T) {
	for xp := 0; xp <= 2000; xp += 7 {
		level, err := LevelForXP(xp)
		require.NoError(t, err)

		cost, err := XPForLevel(level)
		require.NoError(t, err)
		assert.LessOrEqual(t, cost, xp)

		next, err := XPForLevel(level + 1)
		require.NoError(t, err)
		assert.Greater(t, next, xp)
	}
}

func TestLevelForXPPartialLevels(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{xp: 0, level: 0},
		{xp: 16, level: 0},
		{xp: 17, level: 1},
		{xp: 254, level: 14},
		{xp: 271, level: 15},
		{xp: 272, level: 16},
		{xp: 886, level: 30},
		{xp: 887, level: 31},
	}

	for _, tt := range tests {
		level, err := LevelForXP(tt.xp)
		require.NoError(t, err)
		assert.Equal(t, tt.level, level, "xp %d", tt.xp)
	}

	_, err := LevelForXP(-1)
	assert.ErrorIs(t, err, ErrNegativeXP)
}

func TestProgress(t *testing.T) {
	into, step, err := Progress(20)
	require.NoError(t, err)
	assert.Equal(t, 3, into)
	assert.Equal(t, 17, step)

	into, step, err = Progress(272)
	require.NoError(t, err)
	assert.Equal(t, 0, into)
	assert.Equal(t, 20, step)

	_, _, err = Progress(-5)
	assert.ErrorIs(t, err, ErrNegativeXP)
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{xp: 0, want: "0xp"},
		{xp: 16, want: "16xp"},
		{xp: 17, want: "1L"},
		{xp: 300, want: "17L"},
	}

	for _, tt := range tests {
		got, err := DisplayString(tt.xp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := DisplayString(-1)
	assert.ErrorIs(t, err, ErrNegativeXP)
}
