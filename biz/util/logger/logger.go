package logger

import (
	"context"
	"fmt"
	"io"
	"time"

	"blog_api/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init replaces the default hertz logger with a logrus backed one.
func Init() {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	l.SetOutput(newOutput())

	hlog.SetLogger(NewLogrusLogger(l))
	hlog.SetLevel(newLevel())
}

type LogrusLogger struct {
	l *logrus.Logger
}

func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{l: l}
}

var _ hlog.FullLogger = (*LogrusLogger)(nil)

func (ll *LogrusLogger) entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(ll.l)
	if ctx == nil {
		return e
	}
	if logID := trace_info.GetLogId(ctx); logID != "" {
		e = e.WithField("log_id", logID)
	}
	return e.WithContext(ctx)
}

func (ll *LogrusLogger) log(ctx context.Context, lv hlog.Level, msg string) {
	e := ll.entry(ctx)
	switch lv {
	case hlog.LevelTrace:
		e.Trace(msg)
	case hlog.LevelDebug:
		e.Debug(msg)
	case hlog.LevelInfo:
		e.Info(msg)
	case hlog.LevelNotice:
		// logrus has no notice level
		e.WithField("notice", true).Info(msg)
	case hlog.LevelWarn:
		e.Warn(msg)
	case hlog.LevelError:
		e.Error(msg)
	case hlog.LevelFatal:
		e.Fatal(msg)
	}
}

func (ll *LogrusLogger) Trace(v ...interface{}) { ll.log(context.Background(), hlog.LevelTrace, fmt.Sprint(v...)) }
func (ll *LogrusLogger) Debug(v ...interface{}) { ll.log(context.Background(), hlog.LevelDebug, fmt.Sprint(v...)) }
func (ll *LogrusLogger) Info(v ...interface{}) { ll.log(context.Background(), hlog.LevelInfo, fmt.Sprint(v...)) }
func (ll *LogrusLogger) Notice(v ...interface{}) { ll.log(context.Background(), hlog.LevelNotice, fmt.Sprint(v...)) }
func (ll *LogrusLogger) Warn(v ...interface{}) { ll.log(context.Background(), hlog.LevelWarn, fmt.Sprint(v...)) }
func (ll *LogrusLogger) Error(v ...interface{}) { ll.log(context.Background(), hlog.LevelError, fmt.Sprint(v...)) }
func (ll *LogrusLogger) Fatal(v ...interface{}) { ll.log(context.Background(), hlog.LevelFatal, fmt.Sprint(v...)) }

func (ll *LogrusLogger) Tracef(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) Debugf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) Infof(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) Noticef(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) Warnf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) Errorf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelError, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) Fatalf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelError, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (ll *LogrusLogger) SetLevel(lv hlog.Level) {
	ll.l.SetLevel(toLogrusLevel(lv))
}

func (ll *LogrusLogger) SetOutput(w io.Writer) {
	ll.l.SetOutput(w)
}

func toLogrusLevel(lv hlog.Level) logrus.Level {
	switch lv {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo, hlog.LevelNotice:
		return logrus.InfoLevel
	case hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.InfoLevel
}
