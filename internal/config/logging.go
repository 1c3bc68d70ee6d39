package config

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = logrus.New()

// InitLogger routes the debug log to a rotating file under the state
// directory so command output on stdout stays clean.
func InitLogger(cfg *Config) {
	Log.Out = &lumberjack.Logger{
		Filename:   filepath.Join(cfg.StateDir, "pgctl.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	switch cfg.LogLevel {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}

	Log.SetFormatter(&logrus.JSONFormatter{})
}
