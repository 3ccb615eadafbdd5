// Package testing provides test support for code built on sand.
//
// [FakeClock] stands in for the real time source so that timers, logical
// clocks, frame counters and animation controllers can be driven
// deterministically:
//
//	fake := sandtest.NewFakeClockAt(1_600_000_000)
//	rtc := clock.New(1_600_000_000, clock.WithClock(fake))
//	fake.Advance(10 * time.Second)
//	rtc.Update() // 1_600_000_010
package testing
