package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Store struct {
		InitTimeout time.Duration `mapstructure:"init_timeout"`
		SeedFile    string        `mapstructure:"seed_file"`
	} `mapstructure:"store"`

	Report struct {
		// CurrentMonth is the fixed reference month ("August 25" style label).
		// Rollover and the last12 period derive from this, never the clock.
		CurrentMonth string `mapstructure:"current_month"`
		// MonthOrder is "lexicographic" or "chronological".
		MonthOrder string `mapstructure:"month_order"`
	} `mapstructure:"report"`

	Cache struct {
		Enabled       bool          `mapstructure:"enabled"`
		RedisAddr     string        `mapstructure:"redis_addr"`
		RedisPassword string        `mapstructure:"redis_password"`
		TTL           time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type"})
	v.SetDefault("store.init_timeout", 8*time.Second)
	v.SetDefault("report.current_month", "August 25")
	v.SetDefault("report.month_order", "lexicographic")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.ttl", 5*time.Minute)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override from environment
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
		cfg.Cache.Enabled = true
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		cfg.Cache.RedisPassword = pw
	}
	if month := os.Getenv("CURRENT_MONTH"); month != "" {
		cfg.Report.CurrentMonth = month
	}

	return &cfg
}
