package duration

import (
	"fmt"
	"strings"
	"time"
)

// Format renders d at whole-second resolution as hierarchical units,
// e.g. "3d 04h 00m 09s". Leading zero-valued units are omitted, but
// once a larger unit is nonzero every smaller unit is shown. Seconds
// always render.
func Format(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	seconds := total % secondsPerMinute

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%02dh ", hours)
	}
	if minutes > 0 || hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%02dm ", minutes)
	}
	fmt.Fprintf(&b, "%02ds", seconds)
	return b.String()
}
