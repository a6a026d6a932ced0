package logger

import "log/slog"

var def *slog.Logger

// Init настраивает глобальный slog. Бэкенд по умолчанию зависит от среды:
// текст в dev, zap JSON в stage/prod.
func Init(cfg Config) {
	if cfg.Env == "" {
		cfg.Env = DetectEnv()
	}
	if cfg.Service == "" {
		cfg.Service = "chat-service"
	}
	cfg.InstanceID = instanceID(cfg.InstanceID)
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend(cfg.Env)
	}

	var h slog.Handler
	if cfg.Backend == BackendZap {
		h = newZapHandler(cfg)
	} else {
		h = newStdHandler(cfg)
	}

	def = slog.New(h.WithAttrs(baseAttrs(cfg)))
	slog.SetDefault(def)
}

func defaultBackend(env Env) Backend {
	if env == EnvDev {
		return BackendStd
	}
	return BackendZap
}

func L() *slog.Logger {
	if def == nil {
		Init(Config{})
	}
	return def
}
