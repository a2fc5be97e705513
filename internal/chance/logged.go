package chance

import "go.uber.org/zap"

// LoggedSource wraps a Source and logs every draw at debug level.
type LoggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedSource wraps src so each draw is logged to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedSource(src Source, logger *zap.Logger) *LoggedSource {
	return &LoggedSource{src: src, logger: logger}
}

func (l *LoggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("draw int", zap.Int("n", n), zap.Int("value", v))
	return v
}

func (l *LoggedSource) Float64() float64 {
	v := l.src.Float64()
	l.logger.Debug("draw float", zap.Float64("value", v))
	return v
}
