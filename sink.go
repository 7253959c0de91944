package scale

import "go.uber.org/zap"

// Sink receives diagnostic warnings about suspicious formatter
// configurations, such as colliding separator glyphs.
// Warnings are advisory: formatting proceeds regardless.
//
// The default sink of a [Formatter] forwards to the process-global zap
// logger, which is a no-op unless the application has called
// [zap.ReplaceGlobals]. Substitute a sink with [Formatter.WithSink].
type Sink interface {
	Warn(msg string, fields ...zap.Field)
}

// SinkFunc is an adapter that allows an ordinary function to be used as
// a [Sink].
type SinkFunc func(msg string, fields ...zap.Field)

// Warn calls f(msg, fields...).
func (f SinkFunc) Warn(msg string, fields ...zap.Field) {
	f(msg, fields...)
}

// NewZapSink returns a [Sink] that forwards warnings to the given logger.
func NewZapSink(logger *zap.Logger) Sink {
	return zapSink{logger: logger}
}

type zapSink struct {
	logger *zap.Logger
}

func (s zapSink) Warn(msg string, fields ...zap.Field) {
	s.logger.Warn(msg, fields...)
}

// globalSink defers the zap.L() call to warning time, so loggers
// installed after the formatter was built are still picked up.
type globalSink struct{}

func (globalSink) Warn(msg string, fields ...zap.Field) {
	zap.L().Warn(msg, fields...)
}
