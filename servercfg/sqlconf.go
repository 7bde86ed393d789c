package servercfg

import (
	"os"
	"strconv"

	"github.com/privops/elevate/config"
)

// GetSQLConf - get the sql config for the postgres audit store
func GetSQLConf() config.SQLConfig {
	var cfg config.SQLConfig
	cfg.Host = "localhost"
	cfg.Port = 5432
	cfg.Username = "postgres"
	cfg.Password = ""
	cfg.DB = "elevate"
	cfg.SSLMode = "disable"
	if os.Getenv("SQL_HOST") != "" {
		cfg.Host = os.Getenv("SQL_HOST")
	} else if config.Config.SQL.Host != "" {
		cfg.Host = config.Config.SQL.Host
	}
	if os.Getenv("SQL_PORT") != "" {
		if port, err := strconv.Atoi(os.Getenv("SQL_PORT")); err == nil {
			cfg.Port = int32(port)
		}
	} else if config.Config.SQL.Port != 0 {
		cfg.Port = config.Config.SQL.Port
	}
	if os.Getenv("SQL_USER") != "" {
		cfg.Username = os.Getenv("SQL_USER")
	} else if config.Config.SQL.Username != "" {
		cfg.Username = config.Config.SQL.Username
	}
	if os.Getenv("SQL_PASS") != "" {
		cfg.Password = os.Getenv("SQL_PASS")
	} else if config.Config.SQL.Password != "" {
		cfg.Password = config.Config.SQL.Password
	}
	if os.Getenv("SQL_DB") != "" {
		cfg.DB = os.Getenv("SQL_DB")
	} else if config.Config.SQL.DB != "" {
		cfg.DB = config.Config.SQL.DB
	}
	if os.Getenv("SQL_SSL_MODE") != "" {
		cfg.SSLMode = os.Getenv("SQL_SSL_MODE")
	} else if config.Config.SQL.SSLMode != "" {
		cfg.SSLMode = config.Config.SQL.SSLMode
	}
	return cfg
}
