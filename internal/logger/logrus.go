package logger

import "github.com/sirupsen/logrus"

// LogrusAdapter routes entries through a logrus logger. The C export layer
// uses it so its output matches the host process's logrus configuration.
type LogrusAdapter struct {
	entry *logrus.Entry
}

func NewLogrus(base *logrus.Logger, component string) *LogrusAdapter {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &LogrusAdapter{entry: base.WithField("component", component)}
}

func (l *LogrusAdapter) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warning(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, err error, fields map[string]interface{}) {
	entry := l.entry.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

// ToLogrusLevel maps a LogLevel onto the logrus level set.
func ToLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
