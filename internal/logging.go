package internal

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LevelSet map[zapcore.Level]bool

func (ls LevelSet) Enabled(l zapcore.Level) bool {
	return ls[l]
}

var logLevels = LevelSet{zapcore.InfoLevel: true}

// SetAllowedLogLevels replaces the levels routed to stdout and reinstalls the
// global logger.
func SetAllowedLogLevels(levels ...zapcore.Level) {
	newLevels := make(LevelSet)
	for _, lvl := range levels {
		newLevels[lvl] = true
	}
	logLevels = newLevels
	InitLogger()
}

// InitLogger installs a bare console logger as the zap global. Info and
// debug go to stdout when allowed, warnings and above always go to stderr.
func InitLogger() {
	zap.ReplaceGlobals(NewLogger(os.Stdout, os.Stderr))
}

func NewLogger(stdout, stderr zapcore.WriteSyncer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:  "msg",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})

	allowed := logLevels
	stdoutCore := zapcore.NewCore(encoder, zapcore.Lock(stdout), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l < zapcore.WarnLevel && allowed.Enabled(l)
	}))
	stderrCore := zapcore.NewCore(encoder, zapcore.Lock(stderr), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	}))

	return zap.New(zapcore.NewTee(stdoutCore, stderrCore))
}
