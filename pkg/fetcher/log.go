package fetcher

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func SetDefaultLog(w io.Writer, level slog.Leveler) {
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(
				w,
				&slog.HandlerOptions{
					Level: level,
				},
			),
		),
	)
}

// restyLogger routes resty's printf-style logging into slog.
type restyLogger struct {
	log *slog.Logger
}

func newRestyLogger() *restyLogger {
	return &restyLogger{log: slog.Default().With(slog.String("component", "resty"))}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(l.format(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(l.format(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(l.format(format, v...))
}

func (l *restyLogger) format(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
