package schedule

// ValidClock reports whether s has the "HH:MM" 24-hour shape the derivation
// relies on. "24:00" is accepted so a slot ending at midnight validates.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 24 || mm > 59 {
		return false
	}
	if hh == 24 && mm != 0 {
		return false
	}
	return true
}

// Overlaps applies the half-open interval test to two "HH:MM" ranges.
// Zero-padded 24-hour strings order lexicographically the same as
// chronologically, so plain string comparison is sound here. Touching
// boundaries do not overlap.
func Overlaps(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// ClockHour extracts the hour component of a valid "HH:MM" string.
// Returns false for anything ValidClock rejects.
func ClockHour(s string) (int, bool) {
	if !ValidClock(s) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
