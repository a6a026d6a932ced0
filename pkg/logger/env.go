package logger

import (
	"os"
	"strings"
)

type Env string

const (
	EnvDev   Env = "dev"
	EnvStage Env = "stage"
	EnvProd  Env = "prod"
)

var envAliases = map[string]Env{
	"prod":           EnvProd,
	"production":     EnvProd,
	"stage":          EnvStage,
	"staging":        EnvStage,
	"preprod":        EnvStage,
	"pre-production": EnvStage,
}

// DetectEnv читает APP_ENV; всё неизвестное считается dev.
func DetectEnv() Env {
	if env, ok := envAliases[strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))]; ok {
		return env
	}
	return EnvDev
}
