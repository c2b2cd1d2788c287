package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	assert.Equal(t, 0, ParseClock("00:00"))
	assert.Equal(t, 9*60, ParseClock("09:00"))
	assert.Equal(t, 14*60+30, ParseClock("14:30"))
	assert.Equal(t, 23*60+59, ParseClock("23:59"))
}

func TestParseClock_MalformedFallsBackToZero(t *testing.T) {
	for _, s := range []string{"", "abc", "9", "24:00", "12:60", "12-30", "-1:00"} {
		assert.Equal(t, 0, ParseClock(s), "input %q", s)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(9*60+5))
	assert.Equal(t, "00:30", FormatClock(24*60+30))
	assert.Equal(t, "23:00", FormatClock(-60))
}

func TestOverlaps(t *testing.T) {
	// 14:00-15:00 vs 14:30-15:30
	assert.True(t, Overlaps(14*60, 60, 14*60+30, 60))
	// containment
	assert.True(t, Overlaps(10*60, 240, 11*60, 30))
	// identical
	assert.True(t, Overlaps(9*60, 60, 9*60, 60))
}

func TestOverlaps_BackToBackDoNot(t *testing.T) {
	assert.False(t, Overlaps(9*60, 60, 10*60, 60))
	assert.False(t, Overlaps(10*60, 60, 9*60, 60))
}

func TestIsClock(t *testing.T) {
	assert.True(t, IsClock("09:00"))
	assert.True(t, IsClock("23:59"))
	assert.False(t, IsClock("9:00"))
	assert.False(t, IsClock("24:00"))
	assert.False(t, IsClock("12:60"))
	assert.False(t, IsClock("noon"))
}
