// Package logging is the process-wide logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once     sync.Once
	instance *log.Logger
)

func logger() *log.Logger {
	once.Do(func() {
		instance = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "render",
		})
		instance.SetLevel(log.InfoLevel)
	})
	return instance
}

// SetLevel parses and applies a level name (debug, info, warn, error, fatal).
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	logger().SetLevel(lvl)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger().SetOutput(w)
}

func Debug(msg string, keyvals ...interface{}) {
	logger().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	logger().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	logger().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	logger().Error(msg, keyvals...)
}

// Fatal logs and exits with status 1.
func Fatal(msg string, keyvals ...interface{}) {
	logger().Fatal(msg, keyvals...)
}
