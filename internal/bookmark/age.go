package bookmark

import (
	"strconv"
	"time"
)

// FormatAge renders the elapsed time since creation as a label like
// "3 days ago" or "1 minute ago". Days dominate over hours over
// minutes, counts are floored, anything under a minute (or a creation
// time in the future, clock skew) is "now".
func FormatAge(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return "now"
	}

	secs := int64(elapsed / time.Second)
	if days := secs / 86400; days >= 1 {
		return agoLabel(days, "day")
	}
	if hours := secs / 3600; hours >= 1 {
		return agoLabel(hours, "hour")
	}
	if mins := secs / 60; mins >= 1 {
		return agoLabel(mins, "minute")
	}
	return "now"
}

func agoLabel(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.FormatInt(n, 10) + " " + unit + "s ago"
}
