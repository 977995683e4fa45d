package logger

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Sync() error
}

type ZapLogger struct {
	*zap.Logger
}

// NewLogger creates a logger writing to stderr.
func NewLogger(verbose bool) Logger {
	return NewLoggerWithWriter(verbose, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to w. Standard output is
// reserved for codec output, so w should never be stdout.
func NewLoggerWithWriter(verbose bool, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    coloredLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return &ZapLogger{Logger: zap.New(core)}
}

func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var levelColor *color.Color

	switch l {
	case zapcore.DebugLevel:
		levelColor = color.New(color.FgWhite)
	case zapcore.InfoLevel:
		levelColor = color.New(color.FgBlue)
	case zapcore.WarnLevel:
		levelColor = color.New(color.FgYellow)
	case zapcore.ErrorLevel:
		levelColor = color.New(color.FgRed)
	default:
		levelColor = color.New(color.FgRed, color.Bold)
	}

	enc.AppendString(levelColor.Sprint(l.CapitalString()))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05"))
}
