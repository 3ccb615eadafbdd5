// Package units converts between seconds and other time units.
//
// The From functions ([Minutes], [Hours], ...) take a quantity in the named
// unit and return seconds. The To functions invert them. Values are float64
// seconds throughout, matching [clock.Timer.ElapsedSeconds] and the speed
// arithmetic of [clock.RTC].
//
//	deadline := units.Minutes(5) + units.Seconds(30) // 330
//	units.ToHours(deadline)                          // 0.0916...
package units

import (
	"math"
	"time"
)

// DaysPerYear is the length of a mean tropical year in days.
const DaysPerYear = 365.242190402

// Nanoseconds converts t nanoseconds to seconds.
func Nanoseconds(t float64) float64 { return t / 1e9 }

// Microseconds converts t microseconds to seconds.
func Microseconds(t float64) float64 { return t / 1e6 }

// Milliseconds converts t milliseconds to seconds.
func Milliseconds(t float64) float64 { return t / 1e3 }

// Seconds returns t unchanged.
func Seconds(t float64) float64 { return t }

// Minutes converts t minutes to seconds.
func Minutes(t float64) float64 { return t * 60 }

// Hours converts t hours to seconds.
func Hours(t float64) float64 { return t * Minutes(60) }

// Days converts t days to seconds.
func Days(t float64) float64 { return t * Hours(24) }

// Weeks converts t weeks to seconds.
func Weeks(t float64) float64 { return t * Days(7) }

// Years converts t mean tropical years to seconds.
func Years(t float64) float64 { return t * Days(DaysPerYear) }

// ToNanoseconds converts t seconds to nanoseconds.
func ToNanoseconds(t float64) float64 { return t * 1e9 }

// ToMicroseconds converts t seconds to microseconds.
func ToMicroseconds(t float64) float64 { return t * 1e6 }

// ToMilliseconds converts t seconds to milliseconds.
func ToMilliseconds(t float64) float64 { return t * 1e3 }

// ToSeconds returns t unchanged.
func ToSeconds(t float64) float64 { return t }

// ToMinutes converts t seconds to minutes.
func ToMinutes(t float64) float64 { return t / Minutes(1) }

// ToHours converts t seconds to hours.
func ToHours(t float64) float64 { return t / Hours(1) }

// ToDays converts t seconds to days.
func ToDays(t float64) float64 { return t / Days(1) }

// ToWeeks converts t seconds to weeks.
func ToWeeks(t float64) float64 { return t / Weeks(1) }

// ToYears converts t seconds to mean tropical years.
func ToYears(t float64) float64 { return t / Years(1) }

// Duration converts t seconds to a time.Duration, rounding to the nearest
// nanosecond and saturating at the representable range.
func Duration(t float64) time.Duration {
	ns := math.Round(ToNanoseconds(t))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

// FromDuration converts d to seconds.
func FromDuration(d time.Duration) float64 { return d.Seconds() }
