package logging

import (
	"context"
	"log"
)

// Logger prefixes every line with the request ID carried by the context.
type Logger struct {
	requestID string
	out       *log.Logger
}

func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID, out: log.Default()}
}

// WithOutput redirects the logger, mainly for tests.
func (l *Logger) WithOutput(out *log.Logger) *Logger {
	l.out = out
	return l
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.printf("info", operation, format, args...)
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.printf("warn", operation, format, args...)
}

func (l *Logger) LogErrorf(operation string, format string, args ...interface{}) {
	l.printf("error", operation, format, args...)
}

func (l *Logger) printf(level, operation, format string, args ...interface{}) {
	l.out.Printf("[%s] request_id=%s operation=%s "+format, append([]interface{}{level, l.requestID, operation}, args...)...)
}
