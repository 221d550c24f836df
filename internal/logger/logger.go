package logger

import (
	"github.com/omnistore/backoffice/internal/config"
	"github.com/omnistore/backoffice/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// Global logger for convenience
var L *Logger

// NewLogger creates and returns a new Logger instance with the level
// taken from the given configuration
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg != nil && cfg.Logging.Level == types.LogLevelDebug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// Initialize default logger and set it as global while also using Dependency
// Injection. The logger is heavily used so a global instance is kept for
// usecases like scripts, but everywhere else the injected instance should be
// preferred.
func init() {
	L, _ = NewLogger(config.GetDefaultConfig())
}
