package hal

import (
	"fmt"

	"go.uber.org/zap"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger returns a Logger writing console lines to stderr at the given level ("debug",
// "info", "warn", "error").
func NewLogger(level string) (Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	config := zap.Config{
		Level:            lvl,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: l.Sugar()}, nil
}

// WrapZap adapts an existing zap logger.
func WrapZap(l *zap.Logger) Logger {
	return &zapLogger{sugar: l.Sugar()}
}

// NopLogger discards everything.
func NopLogger() Logger {
	return WrapZap(zap.NewNop())
}

func (l *zapLogger) WriteLineString(s string) { l.sugar.Info(s) }

func (l *zapLogger) WriteLineBytes(b []byte) { l.sugar.Info(string(b)) }

func (l *zapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
