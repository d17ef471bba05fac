package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/sirupsen/logrus"
)

var ErrEmptyName = errors.New("logger name is empty")

// Logger is a named leveled logger. Every line starts with the name in the
// logger's colour followed by the coloured level.
type Logger struct {
	entry *logrus.Entry
}

var _ i.Logger = (*Logger)(nil)

// New creates a logger that writes to out.
func New(name, color string, out io.Writer) (*Logger, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&formatter{name: name, color: color})
	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// Info logs at info level.
func (l *Logger) Info(msg string) { l.entry.Info(msg) }

// Warning logs at warning level.
func (l *Logger) Warning(msg string) { l.entry.Warn(msg) }

// Error logs at error level.
func (l *Logger) Error(msg string) { l.entry.Error(msg) }

// With returns a logger that appends key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

type formatter struct {
	name  string
	color string
}

func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s[%s]%s %s[%s]%s %s %s",
		f.color, f.name, config.LogColorReset,
		levelColor(e.Level), levelName(e.Level), config.LogColorReset,
		e.Time.Format(time.DateTime), e.Message)
	for k, v := range e.Data {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR"
	}
	return "INFO"
}

func levelColor(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return config.LogWarningColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor
	}
	return config.LogInfoColor
}
