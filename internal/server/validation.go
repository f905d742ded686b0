package server

import (
	"strings"

	"hogwarts-night/internal/db"
)

const (
	maxNameLength   = 80
	maxReasonLength = 200
	maxCodeLength   = 32

	// maxLogReasonLength is the points_log.reason column width; the stored
	// reason may carry an appended attribution on top of maxReasonLength.
	maxLogReasonLength = 280
)

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}

func cleanDisplayName(value string) string {
	return truncateRunes(strings.TrimSpace(value), maxNameLength)
}

func cleanReason(value string) string {
	return truncateRunes(strings.TrimSpace(value), maxReasonLength)
}

func cleanCode(value string) string {
	return truncateRunes(strings.ToUpper(strings.TrimSpace(value)), maxCodeLength)
}

// optionalHouse validates a house that may be absent. Returns the pointer
// to store (nil when blank) and whether the value was acceptable.
func optionalHouse(value string) (*string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, true
	}
	if !db.ValidHouse(trimmed) {
		return nil, false
	}
	return &trimmed, true
}
