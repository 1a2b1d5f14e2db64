package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	// fieldRequestID is the field holding the request ID on every log line.
	fieldRequestID = "request_id"

	// fieldInstruction is the field holding the name of the instruction
	// being processed.
	fieldInstruction = "instruction"
)

// newLogger returns a Logger configured from the environment, with the
// tracing fields from the Context attached.
//
// Setting DEVELOPMENT=TRUE selects the human readable development encoder,
// otherwise JSON production output is used.
func newLogger(ctx context.Context) *zap.Logger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true

	if strings.ToUpper(os.Getenv("DEVELOPMENT")) == "TRUE" {
		config = zap.NewDevelopmentConfig()
	}

	logger, err := config.Build()
	if err != nil {
		// A logger that cannot be constructed leaves nothing to report
		// errors with.
		panic(err)
	}

	if v := ctx.Value(KeyRequestID); v != nil {
		logger = logger.With(zap.String(fieldRequestID, v.(string)))
	}

	if v := ctx.Value(KeyInstruction); v != nil {
		logger = logger.With(zap.String(fieldInstruction, v.(string)))
	}

	return logger
}

// NewLoggerFromContext returns the Logger in the Context.
//
// If no Logger was set, a new Logger is built so callers always have
// something safe to log with.
func NewLoggerFromContext(ctx context.Context) *zap.Logger {
	v := ctx.Value(KeyLogger)

	if v == nil {
		return newLogger(ctx)
	}

	return v.(*zap.Logger)
}

// Info adds an info level entry to the log in the Context.
func Info(ctx context.Context, format string, values ...interface{}) {
	NewLoggerFromContext(ctx).Sugar().Infof(format, values...)
}

// Warn adds a warning level entry to the log in the Context.
func Warn(ctx context.Context, format string, values ...interface{}) {
	NewLoggerFromContext(ctx).Sugar().Warnf(format, values...)
}

// Error adds an error level entry to the log in the Context.
func Error(ctx context.Context, format string, values ...interface{}) {
	NewLoggerFromContext(ctx).Sugar().Errorf(format, values...)
}

// Fatal adds a fatal level entry to the log in the Context, then exits.
func Fatal(ctx context.Context, format string, values ...interface{}) {
	NewLoggerFromContext(ctx).Sugar().Fatalf(format, values...)
}
