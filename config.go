package roamline

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Store backends selectable through configuration.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the persisted application configuration, managed through viper
// by WithConfigDir.
type Config struct {
	viper        *viper.Viper
	ConfigDir    string `mapstructure:"config_dir"`    // Current config dir
	Backend      string `mapstructure:"backend"`       // Store backend: sqlite, redis or memory
	StoreFile    string `mapstructure:"store_file"`    // SQLite file name inside the config dir
	RedisAddress string `mapstructure:"redis_address"` // host:port of the Redis backend
	RedisPrefix  string `mapstructure:"redis_prefix"`  // Key namespace prefix in Redis
	PerPage      int    `mapstructure:"per_page"`      // Envelope page size constant
}

// SetBackend switches the configured store backend and persists the choice.
// It takes effect on the next construction; an already-open store is not
// swapped underneath the running session.
func (cfg *Config) SetBackend(backend string) error {
	switch backend {
	case BackendSQLite, BackendRedis, BackendMemory:
		cfg.viper.Set("backend", backend)
		if err := cfg.viper.WriteConfig(); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		if err := cfg.viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshalling config to struct : %w", err)
		}
	default:
		return errors.New("invalid backend string")
	}
	return nil
}
