package clock

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beevik/ntp"
	"go.uber.org/atomic"

	"github.com/go-drift/sand/pkg/errors"
)

// DefaultNTPTimeout bounds a single NTP query made by [Process.Sync].
const DefaultNTPTimeout = 5 * time.Second

// Process is the application's clock context. Create one at startup and hand
// it to whatever needs process time; there is no package-level instance.
//
//	Now()     = epoch + correction + offset + timer
//	Runtime() = offset + timer
//
// epoch is the Unix second at construction, offset is moved by [Process.Lapse]
// and correction is the last NTP clock offset stored by [Process.Sync]. Offset
// and correction may be changed from any goroutine.
type Process struct {
	epoch      float64
	offset     atomic.Float64
	correction atomic.Float64
	timer      *Timer

	query func(host string) (*ntp.Response, error)
}

// NewProcess creates a process clock whose epoch is the current second of its
// time source.
func NewProcess(opts ...Option) *Process {
	o := buildOptions(opts)
	return &Process{
		epoch: float64(o.clock.Now().Unix()),
		timer: NewTimer(o.clock),
		query: queryNTP,
	}
}

func queryNTP(host string) (*ntp.Response, error) {
	return ntp.QueryWithOptions(host, ntp.QueryOptions{Timeout: DefaultNTPTimeout})
}

// Now returns the corrected wall-clock time in Unix seconds.
func (p *Process) Now() float64 {
	return p.epoch + p.correction.Load() + p.Runtime()
}

// Runtime returns the seconds since the process clock was created, shifted
// by the lapse offset.
func (p *Process) Runtime() float64 {
	return p.offset.Load() + p.timer.ElapsedSeconds()
}

// Epoch returns the Unix second at which the clock was created.
func (p *Process) Epoch() float64 {
	return p.epoch
}

// Lapse shifts both Now and Runtime by seconds. Negative values travel back.
func (p *Process) Lapse(seconds float64) {
	p.offset.Add(seconds)
}

// Offset returns the accumulated lapse offset in seconds.
func (p *Process) Offset() float64 {
	return p.offset.Load()
}

// Correction returns the NTP correction in seconds.
func (p *Process) Correction() float64 {
	return p.correction.Load()
}

// Sync queries up to tries randomly chosen servers and stores the first valid
// clock offset as the correction applied by Now. On failure the previous
// correction is kept and the last query error is returned as
// [errors.KindNetwork].
func (p *Process) Sync(ctx context.Context, servers []string, tries int) error {
	const op = "clock.Process.Sync"
	if len(servers) == 0 {
		return errors.New(op, errors.KindInvalidArgument, "no time servers given")
	}
	if tries < 1 {
		tries = 1
	}

	var last error
	for range tries {
		if err := ctx.Err(); err != nil {
			return err
		}
		host := servers[rand.IntN(len(servers))]
		resp, err := p.query(host)
		if err == nil {
			err = resp.Validate()
		}
		if err != nil {
			last = fmt.Errorf("query %s: %w", host, err)
			continue
		}
		p.correction.Store(resp.ClockOffset.Seconds())
		return nil
	}
	return &errors.Error{Op: op, Kind: errors.KindNetwork, Err: last}
}

// Sleep blocks for seconds of real time or until ctx is done.
func (p *Process) Sleep(ctx context.Context, seconds float64) error {
	if seconds <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Wink yields the processor for about a microsecond.
func Wink() {
	time.Sleep(time.Microsecond)
}
