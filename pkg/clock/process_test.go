package clock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/beevik/ntp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sand/pkg/errors"
	sandtest "github.com/go-drift/sand/pkg/testing"
)

func validResponse(offset time.Duration) *ntp.Response {
	now := time.Now()
	return &ntp.Response{
		Time:          now,
		ReferenceTime: now,
		Stratum:       2,
		ClockOffset:   offset,
	}
}

func TestProcess_NowAndRuntime(t *testing.T) {
	fake := sandtest.NewFakeClockAt(fixedEpoch)
	p := NewProcess(WithClock(fake))

	assert.Equal(t, float64(fixedEpoch), p.Now())
	assert.Equal(t, 0.0, p.Runtime())

	fake.Advance(2500 * time.Millisecond)
	assert.Equal(t, float64(fixedEpoch)+2.5, p.Now())
	assert.Equal(t, 2.5, p.Runtime())
}

func TestProcess_Lapse(t *testing.T) {
	fake := sandtest.NewFakeClockAt(fixedEpoch)
	p := NewProcess(WithClock(fake))

	p.Lapse(3600)
	p.Lapse(-600)
	assert.Equal(t, 3000.0, p.Offset())
	assert.Equal(t, float64(fixedEpoch+3000), p.Now())
	assert.Equal(t, 3000.0, p.Runtime())
	assert.Equal(t, float64(fixedEpoch), p.Epoch())
}

func TestProcess_Sync(t *testing.T) {
	fake := sandtest.NewFakeClockAt(fixedEpoch)
	p := NewProcess(WithClock(fake))

	var asked []string
	p.query = func(host string) (*ntp.Response, error) {
		asked = append(asked, host)
		return validResponse(1500 * time.Millisecond), nil
	}

	require.NoError(t, p.Sync(context.Background(), []string{"pool.example"}, 3))
	assert.Equal(t, []string{"pool.example"}, asked)
	assert.Equal(t, 1.5, p.Correction())
	assert.Equal(t, float64(fixedEpoch)+1.5, p.Now())
	assert.Equal(t, 0.0, p.Runtime(), "correction does not move runtime")
}

func TestProcess_SyncRetriesThenFails(t *testing.T) {
	p := NewProcess(WithClock(sandtest.NewFakeClockAt(fixedEpoch)))
	p.correction.Store(0.25)

	calls := 0
	p.query = func(host string) (*ntp.Response, error) {
		calls++
		return nil, fmt.Errorf("timeout")
	}

	err := p.Sync(context.Background(), []string{"a", "b"}, 3)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNetwork))
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0.25, p.Correction(), "failed sync keeps the previous correction")
}

func TestProcess_SyncRejectsInvalidResponse(t *testing.T) {
	p := NewProcess(WithClock(sandtest.NewFakeClockAt(fixedEpoch)))
	p.query = func(host string) (*ntp.Response, error) {
		resp := validResponse(time.Hour)
		resp.Stratum = 0 // kiss of death
		return resp, nil
	}

	err := p.Sync(context.Background(), []string{"a"}, 1)
	require.Error(t, err)
	assert.Equal(t, 0.0, p.Correction())
}

func TestProcess_SyncArguments(t *testing.T) {
	p := NewProcess()

	err := p.Sync(context.Background(), nil, 1)
	assert.True(t, errors.IsKind(err, errors.KindInvalidArgument))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.query = func(string) (*ntp.Response, error) {
		t.Fatal("query after cancel")
		return nil, nil
	}
	assert.ErrorIs(t, p.Sync(ctx, []string{"a"}, 1), context.Canceled)
}

func TestProcess_Sleep(t *testing.T) {
	p := NewProcess()

	start := time.Now()
	require.NoError(t, p.Sleep(context.Background(), 0.01))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Sleep(ctx, 60), context.Canceled)
}
