package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	sandtest "github.com/go-drift/sand/pkg/testing"
)

func TestController_ForwardCompletes(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(time.Second, fake)

	c.Forward()
	assert.Equal(t, StatusForward, c.Status())
	assert.True(t, c.IsAnimating())

	fake.Advance(250 * time.Millisecond)
	c.Step()
	assert.InDelta(t, 0.25, c.Value, 1.0/255)

	fake.Advance(time.Second)
	c.Step()
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, StatusCompleted, c.Status())
	assert.True(t, c.IsCompleted())
	assert.False(t, c.IsAnimating())
}

func TestController_StatusSequence(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(500*time.Millisecond, fake)
	c.Curve = ElasticOut

	var got []Status
	c.AddStatusListener(func(s Status) { got = append(got, s) })

	c.Forward()
	fake.Advance(time.Second)
	c.Step()

	c.Reverse()
	fake.Advance(time.Second)
	c.Step()

	assert.Equal(t, []Status{StatusForward, StatusCompleted, StatusReverse, StatusDismissed}, got)
	assert.True(t, c.IsDismissed())
	assert.Equal(t, 0.0, c.Value)
}

func TestController_CurveShapesValue(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(time.Second, fake)
	c.Curve = BackIn

	c.Forward()
	fake.Advance(200 * time.Millisecond)
	c.Step()
	assert.Less(t, c.Value, 0.0, "back-in dips below the start")
}

func TestController_AnimateTo(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(time.Second, fake)

	c.AnimateTo(0.5)
	assert.Equal(t, StatusForward, c.Status())
	fake.Advance(time.Second)
	c.Step()
	assert.Equal(t, 0.5, c.Value)
	assert.False(t, c.IsAnimating())

	c.AnimateTo(0.2)
	assert.Equal(t, StatusReverse, c.Status())
}

func TestController_ZeroDuration(t *testing.T) {
	c := NewController(0, sandtest.NewFakeClock())
	c.Forward()
	c.Step()
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, StatusCompleted, c.Status())
}

func TestController_StepIdle(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(time.Second, fake)

	notified := 0
	c.AddListener(func() { notified++ })
	fake.Advance(time.Second)
	c.Step()
	assert.Equal(t, 0, notified)
	assert.Equal(t, 0.0, c.Value)
}

func TestController_ListenerUnsubscribe(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(time.Second, fake)

	notified := 0
	unsubscribe := c.AddListener(func() { notified++ })
	c.Forward()
	fake.Advance(100 * time.Millisecond)
	c.Step()
	assert.Equal(t, 1, notified)

	unsubscribe()
	fake.Advance(100 * time.Millisecond)
	c.Step()
	assert.Equal(t, 1, notified)
}

func TestController_StopAndReset(t *testing.T) {
	fake := sandtest.NewFakeClock()
	c := NewController(time.Second, fake)

	c.Forward()
	fake.Advance(500 * time.Millisecond)
	c.Step()
	c.Stop()
	held := c.Value

	fake.Advance(time.Second)
	c.Step()
	assert.Equal(t, held, c.Value)

	c.Reset()
	assert.Equal(t, 0.0, c.Value)
	assert.Equal(t, StatusDismissed, c.Status())
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusDismissed, "dismissed"},
		{StatusForward, "forward"},
		{StatusReverse, "reverse"},
		{StatusCompleted, "completed"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
