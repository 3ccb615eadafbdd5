package errors

import (
	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that writes through a zap logger.
// A nil Logger discards everything.
type LogHandler struct {
	// Logger receives the records. Nil means zap.NewNop().
	Logger *zap.Logger
	// Verbose attaches stack traces to panic records.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger *zap.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// HandleError logs an Error at warn level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Time("at", err.Timestamp),
	}
	if err.Err != nil {
		fields = append(fields, zap.Error(err.Err))
	}
	h.logger().Warn("sand error", fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("sand panic", fields...)
}
