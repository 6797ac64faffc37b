package config

import (
	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       int    `env:"PORT" envDefault:"8080"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	// The two partner names allowed to log in.
	PartnerNames   []string `env:"PARTNER_NAMES" envSeparator:"," envDefault:"Dodo,Doudou"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	VapidPublicKey  string `env:"VAPID_PUBLIC_KEY,required"`
	VapidPrivateKey string `env:"VAPID_PRIVATE_KEY,required"`
	VapidSubscriber string `env:"VAPID_SUBSCRIBER" envDefault:"mailto:admin@dodoensemble.app"`

	// Shared secret checked by the reminder dispatch endpoint.
	DispatchSecret string `env:"DISPATCH_SECRET,required"`
	// Cron spec for the scheduler binary. Every 15 minutes keeps every
	// instant within the 30 minute firing window.
	DispatchCronSpec string `env:"DISPATCH_CRON_SPEC" envDefault:"*/15 * * * *"`
	// IANA name of the couple's timezone, used to resolve "today".
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Paris"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
