package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		startA   int
		durA     int
		startB   int
		durB     int
		expected bool
	}{
		{
			name:   "identical intervals overlap",
			startA: 14 * 60, durA: 60,
			startB: 14 * 60, durB: 60,
			expected: true,
		},
		{
			name:   "candidate starts inside existing",
			startA: 14*60 + 30, durA: 30,
			startB: 14 * 60, durB: 60,
			expected: true,
		},
		{
			name:   "containment counts as overlap",
			startA: 10 * 60, durA: 120,
			startB: 10*60 + 30, durB: 30,
			expected: true,
		},
		{
			name:   "adjacent intervals do not overlap (half-open)",
			startA: 10 * 60, durA: 60,
			startB: 11 * 60, durB: 30,
			expected: false,
		},
		{
			name:   "adjacent the other way",
			startA: 11 * 60, durA: 30,
			startB: 10 * 60, durB: 60,
			expected: false,
		},
		{
			name:   "disjoint intervals",
			startA: 9 * 60, durA: 30,
			startB: 15 * 60, durB: 30,
			expected: false,
		},
		{
			name:   "one minute of overlap",
			startA: 10 * 60, durA: 61,
			startB: 11 * 60, durB: 30,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.startA, tt.durA, tt.startB, tt.durB))

			// Overlap is symmetric for every pair
			assert.Equal(t,
				Overlaps(tt.startA, tt.durA, tt.startB, tt.durB),
				Overlaps(tt.startB, tt.durB, tt.startA, tt.durA),
			)
		})
	}
}

func TestIsWithin(t *testing.T) {
	window := struct{ start, end int }{9 * 60, 18 * 60}

	tests := []struct {
		name     string
		start    int
		duration int
		expected bool
	}{
		{"interval inside window", 10 * 60, 45, true},
		{"interval filling window exactly", 9 * 60, 9 * 60, true},
		{"interval ending at window end", 17 * 60, 60, true},
		{"interval starting before window", 8*60 + 30, 60, false},
		{"interval spilling past window end", 17*60 + 30, 60, false},
		{"interval entirely outside", 19 * 60, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsWithin(tt.start, tt.duration, window.start, window.end))
		})
	}
}
