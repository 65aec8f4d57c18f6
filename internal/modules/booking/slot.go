package booking

import "fmt"

const minutesPerDay = 24 * 60

// Overlaps reports whether two half-open [start, end) intervals on the
// same date intersect. Times are zero-padded "HH:MM" strings, so the
// lexicographic comparison is also the chronological one. Back-to-back
// intervals (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && e1 > s2
}

// parseClock converts "HH:MM" to minutes since midnight. It is stricter
// than time.Parse so "24:00" (the exclusive day boundary used for end
// times) is representable.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if m > 59 || h*60+m > minutesPerDay {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
