package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"partial front", "10:00", "11:00", "10:30", "11:30", true},
		{"partial back", "10:30", "11:30", "10:00", "11:00", true},
		{"back to back", "10:00", "11:00", "11:00", "12:00", false},
		{"back to back reversed", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "14:00", "15:00", false},
		{"one minute overlap", "10:00", "11:01", "11:00", "12:00", true},
		{"ends at midnight boundary", "22:00", "24:00", "23:00", "24:00", true},
		{"before midnight slot", "21:00", "22:00", "22:00", "24:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestParseClock(t *testing.T) {
	min, err := parseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	min, err = parseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, min)

	// The exclusive day boundary is representable as an end time.
	min, err = parseClock("24:00")
	assert.NoError(t, err)
	assert.Equal(t, 1440, min)

	// Every character is checked, so digit-prefixed garbage and padded
	// numerals fail along with the obvious junk.
	for _, bad := range []string{"24:01", "25:00", "12:60", "9:30", "12.30", "noon", "", "12:3a", "1a:30", " 9:30", "+2:30", "12: 3"} {
		_, err := parseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "09:05", formatClock(545))
	assert.Equal(t, "24:00", formatClock(1440))
}
