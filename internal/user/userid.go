package user

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	idPrefix = "USR"
	idWidth  = 3
)

// FormatID renders an ordinal as a display identifier, e.g. 7 -> USR007.
// Ordinals beyond the padded width keep their full length (1000 -> USR1000).
func FormatID(ordinal int64) string {
	return fmt.Sprintf("%s%0*d", idPrefix, idWidth, ordinal)
}

// NextID returns the successor of the highest assigned identifier. An empty
// lastID yields the first value in the sequence.
func NextID(lastID string) string {
	if lastID == "" {
		return FormatID(1)
	}
	return FormatID(ordinalOf(lastID) + 1)
}

func ordinalOf(id string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(id, idPrefix), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
