package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEVELOPMENT" default:"false"`
}

// NewLogger builds a zap logger named after the component. An unparsable
// level falls back to info.
func NewLogger(cfg Log, name string) *zap.Logger {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	// Keep stdout for the REPL.
	zcfg.OutputPaths = []string{"stderr"}

	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log.Named(name)
}
