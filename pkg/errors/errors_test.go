package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestErrorString(t *testing.T) {
	err := New("clock.RTC.SetSpeed", KindInvalidArgument, "factor %v must be positive", -1.0)
	assert.Equal(t, "clock.RTC.SetSpeed [invalid_argument]: factor -1 must be positive", err.Error())

	bare := &Error{Op: "tween.Evaluate", Kind: KindUnrecognizedCurve}
	assert.Equal(t, "tween.Evaluate [unrecognized_curve]", bare.Error())
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidArgument, "invalid_argument"},
		{KindMalformedInput, "malformed_input"},
		{KindUnrecognizedCurve, "unrecognized_curve"},
		{KindNetwork, "network"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	inner := New("clock.Process.Sync", KindNetwork, "timeout")
	wrapped := fmt.Errorf("sync: %w", inner)

	assert.True(t, IsKind(wrapped, KindNetwork))
	assert.False(t, IsKind(wrapped, KindConfig))
	assert.False(t, IsKind(fmt.Errorf("plain"), KindNetwork))
	assert.False(t, IsKind(nil, KindNetwork))

	nested := &Error{Op: "cmd.sync", Kind: KindConfig, Err: inner}
	assert.True(t, IsKind(nested, KindNetwork))
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	assert.Equal(t, "panic: boom", err.Error())

	err.Op = "cmd.watch"
	assert.Equal(t, "panic in cmd.watch: boom", err.Error())
}

func TestReport(t *testing.T) {
	var captured *Error
	old := DefaultHandler
	SetHandler(&testHandler{onError: func(err *Error) { captured = err }})
	defer SetHandler(old)

	Report(&Error{Op: "test.op", Kind: KindConfig})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	old := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	var reported *PanicError
	old := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { reported = err }})
	defer SetHandler(old)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic("callback panic")
	}()

	require.NotNil(t, reported)
	assert.Equal(t, "test.callback", reported.Op)
	assert.Equal(t, "callback panic", got)

	assert.NotPanics(t, func() {
		defer RecoverWithCallback("test.nil", nil)
		panic("no callback")
	})
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	_, ok := DefaultHandler.(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should restore LogHandler, got %T", DefaultHandler)
}

func TestLogHandler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := NewLogHandler(zap.New(core), true)

	h.HandleError(New("tween.ParseCurve", KindUnrecognizedCurve, "no curve %q", "wobble"))
	h.HandlePanic(&PanicError{Op: "cmd.watch", Value: "boom", StackTrace: "frame"})
	h.HandleError(nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "sand error", entries[0].Message)
	assert.Equal(t, "unrecognized_curve", entries[0].ContextMap()["kind"])
	assert.Equal(t, "sand panic", entries[1].Message)
	assert.Equal(t, "frame", entries[1].ContextMap()["stack"])
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}
