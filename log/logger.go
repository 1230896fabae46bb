package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init is called, so library code and tests stay quiet.
var Logger = zap.NewNop()

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

// Init builds the console logger. Output goes to stderr only; stdout is reserved for --summary.
func Init(verbose bool) error {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	consoleConfig := zap.NewDevelopmentConfig()
	consoleConfig.EncoderConfig.EncodeLevel = customLevelEncoder
	consoleConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleConfig.EncoderConfig.EncodeCaller = nil
	consoleConfig.Development = false
	consoleConfig.DisableStacktrace = true
	consoleConfig.Level = zap.NewAtomicLevelAt(level)
	consoleConfig.OutputPaths = []string{"stderr"}
	consoleConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := consoleConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to build console logger: %w", err)
	}
	Logger = logger
	return nil
}

// SetLogger replaces the package logger and returns a func restoring the previous one.
func SetLogger(l *zap.Logger) func() {
	prev := Logger
	Logger = l
	return func() { Logger = prev }
}

func Sync() {
	// stderr sync returns EINVAL on some platforms
	_ = Logger.Sync()
}

func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if !isTerminal(os.Stderr) {
		enc.AppendString(level.CapitalString())
		return
	}
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString(colorCyan + "DEBUG" + colorReset)
	case zapcore.InfoLevel:
		enc.AppendString(colorGreen + "INFO" + colorReset)
	case zapcore.WarnLevel:
		enc.AppendString(colorYellow + "WARN" + colorReset)
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		enc.AppendString(colorRed + level.CapitalString() + colorReset)
	default:
		enc.AppendString(colorWhite + level.String() + colorReset)
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func LogDebug(message string, fields ...zap.Field) {
	Logger.Debug(message, fields...)
}

func LogInfo(message string, fields ...zap.Field) {
	Logger.Info(message, fields...)
}

func LogWarn(message string, fields ...zap.Field) {
	Logger.Warn(message, fields...)
}

// LogError logs at error level; the caller still returns the error.
func LogError(message string, fields ...zap.Field) {
	Logger.Error(message, fields...)
}
