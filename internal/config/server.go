package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/eventdash/pkg/log"
)

type ServerConfig struct {
	Port int `env:"PORT" envDefault:"3001"`

	// Origin allowed to call the API from a browser. The dashboard is
	// usually served from a different port during development.
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

func NewServerConfig(ctx context.Context) *ServerConfig {
	c := &ServerConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse server config")
	}
	return c
}
