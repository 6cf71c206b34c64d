package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init points the global zerolog logger at a console writer plus a
// rotating file under LOG_DIR (default "logs"). It runs before the
// config loads, so it reads the environment directly.
func Init() {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "hirely.log"),
		MaxSize:    20, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	level := zerolog.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).
		Level(level).
		With().
		Timestamp().
		Logger()
}
