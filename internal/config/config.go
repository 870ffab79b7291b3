package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port string

	// Database — DBDriver vaut "postgres" ou "sqlite"
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string // sqlite uniquement

	AllowedOrigins []string
	BcryptCost     int
}

// LoadConfig charge le fichier .env s'il existe puis lit les variables d'environnement
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           envString("PORT", "8000"),
		DBDriver:       envString("DB_DRIVER", "postgres"),
		DBHost:         envString("DB_HOST", "localhost"),
		DBPort:         envString("DB_PORT", "5432"),
		DBUser:         envString("DB_USER", "postgres"),
		DBPassword:     envString("DB_PASSWORD", ""),
		DBName:         envString("DB_NAME", "ndangfit"),
		DBPath:         envString("DB_PATH", "./data/ndangfit.db"),
		AllowedOrigins: envList("ALLOWED_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500"),
		BcryptCost:     envInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST %d out of range", cfg.BcryptCost)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envList(key, fallback string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
