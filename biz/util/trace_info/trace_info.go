package trace_info

import (
	"context"
)

// HeaderLogID carries the log id across services.
const HeaderLogID = "X-Log-ID"

type logIdKey struct{}

func WithLogId(ctx context.Context, logId string) context.Context {
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	logId, ok := ctx.Value(logIdKey{}).(string)
	if ok {
		return logId
	}
	return ""
}
