package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var timeFormat = "2006-01-02 15:04:05.000 -0700"

var (
	logger *logrus.Logger
)

func init() {
	logger = nil
}

// Init builds the global logger from the log-* settings in viper.
func Init() {
	logger = logrus.New()
	logger.SetFormatter(newFormatter(viper.GetString("log-format")))
	logger.SetLevel(parseLevel(viper.GetString("log-level")))

	logPath := viper.GetString("log-file-path")
	var writer io.Writer = os.Stdout
	if len(logPath) > 0 {
		writer = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     7, //days
			Compress:   true,
		})

		if file, err := os.OpenFile(logPath+".panic", os.O_CREATE|os.O_WRONLY, 0666); err != nil {
			fmt.Println("failed to log panic into file")
		} else {
			handlePanicLoggingWithFile(file)
		}
	}
	logger.SetOutput(writer)
}

func newFormatter(format string) logrus.Formatter {
	if format == "json" {
		jsonFormatter := new(logrus.JSONFormatter)
		jsonFormatter.TimestampFormat = timeFormat
		return jsonFormatter
	}

	textFormatter := new(logrus.TextFormatter)
	textFormatter.TimestampFormat = timeFormat
	textFormatter.FullTimestamp = true
	return textFormatter
}

func parseLevel(name string) logrus.Level {
	if name == "" {
		return logrus.InfoLevel
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		fmt.Printf("failed to parse log level %q, fallback to info: %s\n", name, err)
		return logrus.InfoLevel
	}
	return level
}

func Logger() *logrus.Logger {
	if logger == nil {
		Init()
	}
	return logger
}
