package clock

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sand/pkg/errors"
)

func TestRTC_String(t *testing.T) {
	rtc := New(time.Date(2009, time.February, 3, 4, 5, 6, 0, time.UTC).Unix(), WithLocation(time.UTC))
	assert.Equal(t, "2009-02-03 04:05:06", rtc.String())
}

func TestRTC_RoundTrip(t *testing.T) {
	locations := []*time.Location{time.UTC, time.FixedZone("UTC+9", 9*3600), time.FixedZone("UTC-5", -5*3600)}
	instants := []int64{0, 86399, 951782400, fixedEpoch, 2147483647, 4102444800}

	for _, loc := range locations {
		for _, instant := range instants {
			src := New(instant, WithLocation(loc))
			dst, ok := ParseRTC(src.String(), WithLocation(loc))
			require.True(t, ok, "parse %q", src.String())
			assert.Equal(t, instant, dst.Anchor(), "%s in %s", src, loc)
		}
	}
}

func TestRTC_ParseDelimiters(t *testing.T) {
	want := time.Date(2020, time.July, 8, 9, 10, 11, 0, time.UTC).Unix()
	inputs := []string{
		"2020-07-08 09:10:11",
		"2020/07/08 09:10:11",
		"2020:07:08:09:10:11",
		"2020 7 8 9 10 11",
		"  2020--07//08  09::10::11  ",
		"2020-07-08 09:10:11 trailing tokens are ignored",
	}
	for _, in := range inputs {
		rtc, ok := ParseRTC(in, WithLocation(time.UTC))
		assert.True(t, ok, in)
		assert.Equal(t, want, rtc.Anchor(), in)
	}
}

func TestRTC_ParseMalformed(t *testing.T) {
	inputs := []string{
		"",
		"2020-07-08",
		"2020-07-08 09:10",
		"year-07-08 09:10:11",
		"::::::",
	}
	for _, in := range inputs {
		rtc, ok := ParseRTC(in, WithLocation(time.UTC))
		assert.False(t, ok, in)
		assert.Equal(t, int64(0), rtc.Anchor(), in)
	}
}

func TestRTC_ParseResetsState(t *testing.T) {
	rtc, _ := newTestRTC(t)
	require.NoError(t, rtc.SetSpeed(3))
	rtc.Pause()

	require.True(t, rtc.Parse("2001-02-03 04:05:06"))
	assert.Equal(t, 1.0, rtc.Speed())
	assert.False(t, rtc.Held())

	require.NoError(t, rtc.SetSpeed(3))
	assert.False(t, rtc.Parse("garbage"))
	assert.Equal(t, int64(0), rtc.Anchor())
	assert.Equal(t, 3.0, rtc.Speed(), "malformed input only re-anchors")
}

func TestRTC_ParseNormalizes(t *testing.T) {
	rtc, ok := ParseRTC("2024-01-32 00:00:00", WithLocation(time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2024-02-01 00:00:00", rtc.String())

	rtc, ok = ParseRTC("2024-02-03 12h:30m:15s", WithLocation(time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2024-02-03 12:30:15", rtc.String())
}

func TestRTC_TextMarshaling(t *testing.T) {
	type snapshot struct {
		Clock *RTC `json:"clock"`
	}

	in := snapshot{Clock: New(fixedEpoch, WithLocation(time.Local))}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out snapshot
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, int64(fixedEpoch), out.Clock.Anchor())

	err = json.Unmarshal([]byte(`{"clock":"not a time"}`), &out)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMalformedInput))
	assert.Equal(t, int64(0), out.Clock.Anchor())
}
