package config

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is read from the environment (after .env), optionally layered
// under a YAML file.
type Config struct {
	// Env selects the log format: "local" is human readable, anything else
	// is JSON.
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	DBPath     string `yaml:"db_path" env:"DB_PATH" env-default:"roster.db"`
	HTTPAddr   string `yaml:"http_addr" env:"HTTP_ADDR" env-default:"localhost:8080"`
	StorageKey string `yaml:"storage_key" env:"STORAGE_KEY" env-default:"employees"`
}

// Load reads path (when non-empty) and then the environment. Environment
// values win over the file.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad loads .env, resolves the config file from CONFIG_PATH or the
// -config flag, and exits on error.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		flagPath := flag.String("config", "", "path to a YAML config file")
		flag.Parse()
		path = *flagPath
	}
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", path)
		}
	}

	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %v", err)
	}
	return cfg
}
