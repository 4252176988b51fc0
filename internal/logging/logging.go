// Package logging builds the process logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the log level and an optional rotated log file.
type Config struct {
	Level string
	File  string
}

// LoadConfig reads logging configuration from the environment.
func LoadConfig() Config {
	cfg := Config{Level: "warn"}
	if v := os.Getenv("ASKEW_TRAINER_LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	cfg.File = os.Getenv("ASKEW_TRAINER_LOG_FILE")
	return cfg
}

// New builds a logger writing console output to stderr at cfg.Level and,
// when cfg.File is set, JSON lines at debug level to a rotated file.
// The returned func flushes and closes the sinks.
func New(cfg Config) (*zap.Logger, func()) {
	level := zapcore.WarnLevel
	if l, err := zapcore.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		level = l
	}

	consoleEnc := zap.NewDevelopmentEncoderConfig()
	consoleEnc.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEnc), zapcore.Lock(os.Stderr), level),
	}

	var file *lumberjack.Logger
	if cfg.File != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			zapcore.DebugLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named("askew-trainer")
	return logger, func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
}
