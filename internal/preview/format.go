package preview

import (
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
	secondsPerMonth  = 2630016  // 30.44 days
	secondsPerYear   = 31557600 // 365.25 days
)

// RelativeTime renders t relative to now as "<n> <unit>(s) ago", picking
// the coarsest fitting unit and floor-dividing into it. Deltas under two
// weeks stay in days. A negative delta (clock skew, future commit) renders
// from its absolute value.
func RelativeTime(t, now time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	if secs < 0 {
		secs = -secs
	}

	switch {
	case secs < secondsPerMinute:
		return ago(secs, "second")
	case secs < secondsPerHour:
		return ago(secs/secondsPerMinute, "minute")
	case secs < secondsPerDay:
		return ago(secs/secondsPerHour, "hour")
	case secs < 2*secondsPerWeek:
		return ago(secs/secondsPerDay, "day")
	case secs < secondsPerMonth:
		return ago(secs/secondsPerWeek, "week")
	case secs < secondsPerYear:
		return ago(secs/secondsPerMonth, "month")
	default:
		return ago(secs/secondsPerYear, "year")
	}
}

func ago(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Layout converts an strftime-like date format into a Go time layout.
// Supported tokens: %Y %y %m %d %e %H %I %M %S %p %a %A %b %B %Z and %%.
// Unknown tokens pass through unchanged.
func Layout(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}

		i++
		switch format[i] {
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'm':
			b.WriteString("01")
		case 'd':
			b.WriteString("02")
		case 'e':
			b.WriteString("_2")
		case 'H':
			b.WriteString("15")
		case 'I':
			b.WriteString("03")
		case 'M':
			b.WriteString("04")
		case 'S':
			b.WriteString("05")
		case 'p':
			b.WriteString("PM")
		case 'a':
			b.WriteString("Mon")
		case 'A':
			b.WriteString("Monday")
		case 'b':
			b.WriteString("Jan")
		case 'B':
			b.WriteString("January")
		case 'Z':
			b.WriteString("MST")
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}
