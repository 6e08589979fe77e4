package logger

import (
	"os"

	"github.com/modeemi/spacestatus/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	Log *zap.Logger
}

// NewLogger builds a zap logger from configuration. When a file path is set
// the output is rotated via lumberjack, otherwise it goes to stderr.
func NewLogger(cfg *config.Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Logger.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Logger.Encoding == "json" {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Logger.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	var sink zapcore.WriteSyncer
	if cfg.Logger.FilePath != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Logger.FilePath,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			Compress:   true,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, level)
	return &Logger{Log: zap.New(core, zap.AddCaller())}, nil
}

func NewDevelopmentLogger() (*Logger, error) {
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{Log: log}, nil
}

// NewNopLogger is for tests.
func NewNopLogger() *Logger {
	return &Logger{Log: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.Log.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.Log.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.Log.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.Log.Error(msg, fields...) }
func (l *Logger) Panic(msg string, fields ...zap.Field) { l.Log.Panic(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.Log.Fatal(msg, fields...) }
