package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// devmode is set at link time: -ldflags "-X github.com/samuelyuan/go-tabletop/logging.devmode=true"
var devmode = "false"

var rootLogger *zap.Logger

func init() {
	rootLogger = New(IsDevMode())
}

func IsDevMode() bool {
	return strings.ToLower(devmode) == "true"
}

// New builds a console logger writing to stdout. Debug messages are only
// enabled in dev mode.
func New(dev bool) *zap.Logger {
	var encoderConfig zapcore.EncoderConfig
	level := zapcore.InfoLevel
	if dev {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level)
	return zap.New(core)
}

// Root returns the process-wide logger
func Root() *zap.Logger {
	return rootLogger
}

// Named returns the logger of one component
func Named(component string) *zap.Logger {
	return rootLogger.Named(component)
}
