package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/eventdash/pkg/log"
)

type AribaConfig struct {
	ClientID     string        `env:"ARIBA_CLIENT_ID"`
	ClientSecret string        `env:"ARIBA_CLIENT_SECRET"`
	APIKey       string        `env:"ARIBA_API_KEY"`
	Realm        string        `env:"ARIBA_REALM"`
	OAuthURL     string        `env:"ARIBA_OAUTH_URL"`
	BaseURL      string        `env:"ARIBA_BASE"`
	Timeout      time.Duration `env:"ARIBA_TIMEOUT" envDefault:"30s"`
}

func NewAribaConfig(ctx context.Context) *AribaConfig {
	c := &AribaConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Ariba config")
	}
	return c
}
