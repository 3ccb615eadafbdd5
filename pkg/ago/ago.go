// Package ago renders time differences as short English phrases such as
// "3 minutes ago" or "in 2 weeks".
//
// Both directions use the same thresholds; only the wording differs. The sign
// of the argument is ignored.
package ago

import (
	"math"
	"strconv"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

type phrases struct {
	now, minute, hour, day, month, year string
	count                               func(n int, unit string) string
}

var past = phrases{
	now:    "just now",
	minute: "a minute ago",
	hour:   "an hour ago",
	day:    "yesterday",
	month:  "a month ago",
	year:   "a year ago",
	count: func(n int, unit string) string {
		return strconv.Itoa(n) + " " + unit + " ago"
	},
}

var future = phrases{
	now:    "right now",
	minute: "in a minute",
	hour:   "in an hour",
	day:    "tomorrow",
	month:  "in a month",
	year:   "in a year",
	count: func(n int, unit string) string {
		return "in " + strconv.Itoa(n) + " " + unit
	},
}

// Ago describes a moment diff seconds in the past.
func Ago(diff float64) string {
	return past.describe(diff)
}

// In describes a moment diff seconds in the future.
func In(diff float64) string {
	return future.describe(diff)
}

func (p phrases) describe(diff float64) string {
	diff = math.Abs(diff)
	if math.IsNaN(diff) {
		return p.now
	}
	days := int(math.Floor(diff / day))

	switch {
	case days == 0:
		switch {
		case diff < minute:
			return p.now
		case diff < 2*minute:
			return p.minute
		case diff < hour:
			return p.count(int(diff/minute), "minutes")
		case diff < 2*hour:
			return p.hour
		default:
			return p.count(int(diff/hour), "hours")
		}
	case days == 1:
		return p.day
	case days <= 13:
		return p.count(days, "days")
	case days < 31:
		return p.count(ceilDiv(days, 7), "weeks")
	case days < 62:
		return p.month
	case days < 365:
		return p.count(ceilDiv(days, 31), "months")
	case days < 730:
		return p.year
	default:
		return p.count(ceilDiv(days, 365), "years")
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
