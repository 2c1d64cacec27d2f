package configs

import "time"

// Redis configures the session store when sessions are kept in Redis.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// SessionTTL is how long an idle session survives.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}
