package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
}

// ZapConfig holds logger initialization options.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a zap-backed Logger from the given config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any)  { l.sugar.Debug(arg...) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)   { l.sugar.Info(arg...) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)   { l.sugar.Warn(arg...) }
func (l *zapLogger) Error(ctx context.Context, arg ...any)  { l.sugar.Error(arg...) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any)  { l.sugar.Fatal(arg...) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.sugar.DPanic(arg...) }
func (l *zapLogger) Panic(ctx context.Context, arg ...any)  { l.sugar.Panic(arg...) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}
