package clock

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/sand/pkg/errors"
)

// Layout is the serialized form of an RTC anchor.
const Layout = "2006-01-02 15:04:05"

const delimiters = ":-/ "

// String returns the anchor as "YYYY-MM-DD HH:MM:SS" in the clock's location.
func (c *RTC) String() string {
	return c.Format(Layout)
}

// MarshalText implements encoding.TextMarshaler.
func (c *RTC) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed text still
// resets the clock to the epoch, as [RTC.Parse] does, and is additionally
// reported as [errors.KindMalformedInput].
func (c *RTC) UnmarshalText(text []byte) error {
	if !c.Parse(string(text)) {
		return errors.New("clock.RTC.UnmarshalText", errors.KindMalformedInput,
			"want year, month, day, hour, minute and second in %q", text)
	}
	return nil
}

// Parse re-anchors the clock from six numeric fields (year, month, day, hour,
// minute, second) separated by any of ':', '-', '/' or ' '. Out-of-range
// fields are normalized, so "2024-01-32 00:00:00" is February 1st.
//
// On success the speed factor returns to 1. Text with fewer than six numeric
// fields re-anchors the clock at the epoch and Parse returns false.
func (c *RTC) Parse(text string) bool {
	fields, ok := parseFields(text)
	if !ok {
		c.Set(0)
		return false
	}
	c.init()
	t := time.Date(fields[0], time.Month(fields[1]), fields[2],
		fields[3], fields[4], fields[5], 0, c.loc)
	c.speed = 1
	c.Set(t.Unix())
	return true
}

// ParseRTC creates a running clock from serialized text. The returned clock
// is anchored at the epoch when ok is false.
func ParseRTC(text string, opts ...Option) (rtc *RTC, ok bool) {
	rtc = New(0, opts...)
	ok = rtc.Parse(text)
	return rtc, ok
}

func parseFields(text string) ([6]int, bool) {
	var fields [6]int
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	if len(tokens) < len(fields) {
		return fields, false
	}
	for i := range fields {
		n, ok := leadingInt(tokens[i])
		if !ok {
			return fields, false
		}
		fields[i] = n
	}
	return fields, true
}

// leadingInt parses the decimal digits at the start of s ("12h" is 12).
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
