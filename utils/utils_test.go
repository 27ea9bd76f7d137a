package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		name          string
		value, lo, hi float64
		expected      float64
	}{
		{"inside", 50, 0, 100, 50},
		{"below", -3, 0, 100, 0},
		{"above", 120, 0, 100, 100},
		{"on lower edge", 0, 0, 100, 0},
		{"on upper edge", 100, 0, 100, 100},
		{"inverted bounds prefer lo", 5, 10, 0, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clamp(tc.value, tc.lo, tc.hi))
		})
	}
}

func TestAbsAndMin(t *testing.T) {
	assert.Equal(t, 5.0, Abs(-5))
	assert.Equal(t, 5.0, Abs(5))
	assert.Equal(t, 0.0, Abs(0))
	assert.Equal(t, 2.0, Min(2, 3))
	assert.Equal(t, -1.0, Min(4, -1))
}

func TestIsValidMatchLength(t *testing.T) {
	for _, n := range []int{3, 5, 7} {
		assert.True(t, IsValidMatchLength(n), "match length %d", n)
	}
	for _, n := range []int{-1, 0, 1, 4, 9} {
		assert.False(t, IsValidMatchLength(n), "match length %d", n)
	}
}
