package roamline

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/roamline/roamline/db"
	"github.com/roamline/roamline/store"
)

// WithConfigDir configures the instance to use the specified configuration
// directory. It creates the directory if it doesn't exist and initializes
// the configuration file using Viper.
func WithConfigDir(appConfigDir string) func(*Backoffice) error {
	return func(back *Backoffice) error {
		_, err := os.ReadDir(appConfigDir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Println("[*] creating config dir")
				err := os.MkdirAll(appConfigDir, 0700)
				if err != nil {
					return fmt.Errorf("creating config dir %s: %w", appConfigDir, err)
				}
			} else {
				return fmt.Errorf("checking if directory exists %s: %w", appConfigDir, err)
			}
		}
		// At this point, the directory exists or was created successfully
		back.ConfigDir = appConfigDir

		// VIPER
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appConfigDir)
		viper.SetDefault("backend", BackendSQLite)
		viper.SetDefault("store_file", "roamline.db")
		viper.SetDefault("redis_address", "127.0.0.1:6379")
		viper.SetDefault("redis_prefix", "roamline")
		viper.SetDefault("per_page", 15)
		err = viper.ReadInConfig()
		if err != nil {
			// need to check if the error is config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				// Config file is not found
				err = viper.SafeWriteConfig()
				if err != nil {
					return fmt.Errorf("writing config file : %w", err)
				}
			} else {
				return fmt.Errorf("reading config file : %w", err)
			}
		}
		if err := viper.Unmarshal(&back.Config); err != nil {
			return fmt.Errorf("unmarshalling config to struct : %w", err)
		}

		back.Config.viper = viper.GetViper()
		back.Config.ConfigDir = appConfigDir
		// Rewrite entire file from struct
		err = viper.WriteConfig()
		if err != nil {
			return fmt.Errorf("writing config after unmarshalling : %w", err)
		}
		return nil
	}
}

// WithStore injects an already-constructed store. Useful for tests that
// substitute a fake.
func WithStore(s store.Store) func(*Backoffice) error {
	return func(back *Backoffice) error {
		if back.Store != nil {
			return errors.New("backoffice already has a store configured")
		}
		back.Store = s
		return nil
	}
}

// WithMemoryStore configures an ephemeral in-memory store.
func WithMemoryStore() func(*Backoffice) error {
	return func(back *Backoffice) error {
		return WithStore(store.NewMemoryStore())(back)
	}
}

// WithSQLiteStore opens the durable SQLite store at the given file path.
func WithSQLiteStore(dbPath string) func(*Backoffice) error {
	return func(back *Backoffice) error {
		s, err := store.NewSQLiteStore(dbPath)
		if err != nil {
			return fmt.Errorf("opening sqlite store %s: %w", dbPath, err)
		}
		return WithStore(s)(back)
	}
}

// WithRedisStore connects to a Redis backend at the given address,
// namespacing keys with prefix.
func WithRedisStore(address, prefix string) func(*Backoffice) error {
	return func(back *Backoffice) error {
		s := store.NewRedisStore(&redis.Options{Addr: address}, prefix)
		if err := s.Ping(); err != nil {
			return fmt.Errorf("pinging redis at %s: %w", address, err)
		}
		return WithStore(s)(back)
	}
}

// WithConfiguredStore opens the backend named by the loaded configuration.
// It must be applied after WithConfigDir.
func WithConfiguredStore() func(*Backoffice) error {
	return func(back *Backoffice) error {
		switch back.Config.Backend {
		case BackendSQLite:
			return WithSQLiteStore(path.Join(back.ConfigDir, back.Config.StoreFile))(back)
		case BackendRedis:
			return WithRedisStore(back.Config.RedisAddress, back.Config.RedisPrefix)(back)
		case BackendMemory:
			return WithMemoryStore()(back)
		case "":
			return errors.New("no backend configured, apply WithConfigDir first")
		default:
			return fmt.Errorf("unknown backend %q", back.Config.Backend)
		}
	}
}

// WithRepo replaces the repository, closing any previous one first.
func WithRepo(repo *db.Repository) func(*Backoffice) error {
	return func(back *Backoffice) error {
		if back.Repo != nil {
			if err := back.Repo.Close(); err != nil {
				return err
			}
			back.Repo = nil
		}
		back.Repo = repo
		return nil
	}
}
