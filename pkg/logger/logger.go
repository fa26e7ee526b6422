package logger

import (
	"fmt"
	"os"
	"peer_edu_backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "peer-instruction"

var Log = zap.NewNop()

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.MillisDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// Level 显式配置优先，否则按运行模式
func Level(cfg *config.Config) (zapcore.Level, error) {
	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return zap.InfoLevel, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
		return lvl, nil
	}
	if cfg.Server.Mode == "debug" {
		return zap.DebugLevel, nil
	}
	return zap.InfoLevel, nil
}

// New 文件写 JSON，控制台写可读格式；每条日志带服务名和运行模式
func New(cfg *config.Config, file, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := Level(cfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), file, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), console, level),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(
			zap.String("service", serviceName),
			zap.String("mode", cfg.Server.Mode),
		),
	), nil
}

func InitLogger(cfg *config.Config) {
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	})

	l, err := New(cfg, fileWriter, zapcore.AddSync(os.Stdout))
	if err != nil {
		// 级别写错不阻止启动
		fmt.Fprintf(os.Stderr, "logger: %v, falling back to info\n", err)
		cfg.Log.Level = "info"
		l, _ = New(cfg, fileWriter, zapcore.AddSync(os.Stdout))
	}
	Log = l
}

// Replace 替换全局 logger，测试中用 zaptest/observer 捕获日志
func Replace(l *zap.Logger) func() {
	prev := Log
	Log = l
	return func() { Log = prev }
}
