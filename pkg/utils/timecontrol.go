package utils

import (
	"strconv"
	"strings"
)

// TimeControlLabel maps a raw time control like "180+2" to its speed
// label. The base time alone decides the bucket; unparseable values fall
// back to Rapid.
func TimeControlLabel(timeControl string) string {
	if timeControl == "" {
		return ""
	}
	base, err := strconv.Atoi(strings.SplitN(timeControl, "+", 2)[0])
	if err != nil {
		return "Rapid"
	}
	switch {
	case base < 180:
		return "Bullet"
	case base < 600:
		return "Blitz"
	default:
		return "Rapid"
	}
}
