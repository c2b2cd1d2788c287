package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" to minutes since midnight.
// Malformed input yields 0 rather than an error; callers that need strict
// validation should check the format themselves before calling.
func ParseClock(s string) int {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM",
// normalized modulo 24 hours.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether the half-open intervals [startA, startA+durA)
// and [startB, startB+durB) intersect. Back-to-back intervals do not overlap.
func Overlaps(startA, durA, startB, durB int) bool {
	return startA < startB+durB && startA+durA > startB
}

// IsClock reports whether s is a well-formed "HH:MM" clock string.
func IsClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}
