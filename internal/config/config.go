package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI     string   `env:"MONGODB_URI,required"`
	DBName       string   `env:"DB_NAME" envDefault:"eventhub"`
	JWTSecret    string   `env:"JWT_SECRET,required"`
	Port         string   `env:"PORT" envDefault:"8080"`
	CORSOrigins  []string `env:"CORS_ORIGINS" envDefault:"*"`
	ResendAPIKey string   `env:"RESEND_API_KEY"`
	FromEmail    string   `env:"FROM_EMAIL" envDefault:"events@localhost"`
}

// Load reads .env if present (ignored in production where env vars are set
// directly) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
