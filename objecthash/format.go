package objecthash

import (
	"strconv"
	"time"

	"github.com/arnau/blot/value"
)

// formatInt renders an Integer's canonical decimal text, with no leading
// zeroes and a leading '-' for negative values.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// formatTimestamp renders a Timestamp's canonical text as RFC3339 in UTC,
// so that two Timestamp values naming the same instant hash identically
// regardless of the zone they were parsed with.
func formatTimestamp(t value.Timestamp) string {
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}
