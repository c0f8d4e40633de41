package utils

import "strconv"

// ParseLimit interprets a limit query value. Missing, malformed or
// non-positive values fall back to def; anything above max is clamped.
func ParseLimit(s string, def, max int) int {
	limit, err := strconv.Atoi(s)
	if err != nil || limit <= 0 {
		return def
	}

	if limit > max {
		return max
	}

	return limit
}
