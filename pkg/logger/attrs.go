package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// instanceID идентифицирует процесс в логах: hostname плюс короткий
// случайный суффикс, чтобы реплики на одном хосте различались.
func instanceID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "chat"
	}
	return fmt.Sprintf("%s-%s", host, uuid.NewString()[:8])
}

func baseAttrs(cfg Config) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("service", cfg.Service),
		slog.String("env", string(cfg.Env)),
		slog.String("instance_id", cfg.InstanceID),
	}
	if cfg.Version != "" {
		attrs = append(attrs, slog.String("version", cfg.Version))
	}
	return attrs
}
