package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	MongoURL    string
	DBName      string
	JWTSecret   string
	RedisAddr   string
	CORSOrigins []string
}

// Load reads .env (if present) and builds the Config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file loaded; relying on process environment")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBName == "" {
		cfg.DBName = "shop"
	}
	return cfg
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// AllowAllOrigins reports whether the allow-list is the wildcard.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}
