package config

import (
	"github.com/spf13/viper"
)

var (
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	DEBUG_MODE   = true
)

func init() {
	viper.SetDefault("MYSQL_DSN", MYSQL_DSN)
	viper.SetDefault("SQLITE_FILE", SQLITE_FILE)
	viper.SetDefault("BIND_ADDRESS", BIND_ADDRESS)
	viper.SetDefault("TLS_DOMAINS", TLS_DOMAINS)
	viper.SetDefault("DEBUG_MODE", DEBUG_MODE)

	viper.AutomaticEnv()

	// Optional config file next to the binary
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	MYSQL_DSN = viper.GetString("MYSQL_DSN")
	SQLITE_FILE = viper.GetString("SQLITE_FILE")
	BIND_ADDRESS = viper.GetString("BIND_ADDRESS")
	TLS_DOMAINS = viper.GetString("TLS_DOMAINS")
	DEBUG_MODE = viper.GetBool("DEBUG_MODE")
}
