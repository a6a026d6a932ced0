package logger

import "log/slog"

type Backend string

const (
	BackendStd Backend = "std" // текстовый handler, для dev
	BackendZap Backend = "zap" // JSON через slog-zap, для stage/prod
)

type Config struct {
	Service    string
	Version    string
	InstanceID string // пустой — сгенерируется из hostname

	Env       Env
	Backend   Backend
	Level     slog.Level
	Debug     bool // поднимает уровень до Debug, если Level не задан явно
	AddSource bool

	// Сэмплирование zap-бэкенда: первые SampleInitial записей уровня
	// в секунду пишутся целиком, дальше — каждая SampleThereafter-я.
	SampleInitial    int
	SampleThereafter int
}
