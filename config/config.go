package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"library-lending/logger"
)

const envPrefix = "LENDING"

type Config struct {
	// CatalogDB is the SQLite fixture to load. Empty means the built-in seed.
	CatalogDB   string `envconfig:"CATALOG_DB"`
	BorrowLimit int    `envconfig:"BORROW_LIMIT" default:"3"`
	Log         logger.Log
}

// Load reads LENDING_* variables, after loading a .env file from the working
// directory if there is one.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
