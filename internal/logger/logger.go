package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger. LOG_FORMAT picks the encoder ("json" or
// empty for production output, "console"/"text" for colored dev output) and
// LOG_LEVEL, when set, replaces the preset level.
func New(format, level string) (*zap.Logger, error) {
	cfg, err := presetFor(format)
	if err != nil {
		return nil, err
	}

	if level != "" {
		atomic, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = atomic
	}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

func presetFor(format string) (zap.Config, error) {
	switch format {
	case "json", "":
		return zap.NewProductionConfig(), nil
	case "console", "text":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg, nil
	}
	return zap.Config{}, fmt.Errorf("unknown log format %q", format)
}
