// Package logger builds the zap logger used by the qtx command line tools.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the logger configuration.
type Config struct {
	// Level is the minimum level ("debug", "info", "warn", "error"). Defaults to "info".
	Level string `yaml:"level" mapstructure:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format" mapstructure:"format"`
	// OutputFile is a path, or "stdout"/"stderr". Defaults to stderr.
	OutputFile string `yaml:"output_file" mapstructure:"output_file"`
}

// New creates a zap.Logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	}

	ws, err := writeSyncer(cfg.OutputFile)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder(cfg.Format), ws, level)
	return zap.New(core, zap.AddCaller()).With(zap.String("service", "qtx")), nil
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if strings.ToLower(format) == "console" {
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

func writeSyncer(output string) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(output) {
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil
	default:
		f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", output, err)
		}
		return zapcore.AddSync(f), nil
	}
}
