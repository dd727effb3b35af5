package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMemory    = "memory"
	DriverSQLite    = "sqlite"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"

	DefaultRedisKeyPrefix = "choukette:"
)

type Config struct {
	ServerPort  string
	Environment string

	StorageDriver  string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	FirebaseProject            string
	FirebaseServiceAccountPath string
	FirebaseServiceAccountJSON string
	SnapshotBucket             string

	JWTSecret string
	JWTExpiry int64

	AdminEmail    string
	AdminPassword string

	AvatarSeed uint64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StorageDriver:  getEnv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:     getEnv("SQLITE_PATH", "data/choukette.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        int(getEnvAsInt64("REDIS_DB", 0)),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", DefaultRedisKeyPrefix),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		SnapshotBucket:             getEnv("SNAPSHOT_BUCKET", ""),

		JWTSecret: getEnv("JWT_SECRET", "choukette-dev-secret"),
		JWTExpiry: getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours

		// Admin login is disabled while ADMIN_PASSWORD is empty.
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@choukette.fr"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		AvatarSeed: uint64(getEnvAsInt64("AVATAR_SEED", 0)),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverSQLite:
	case DriverRedis:
		if c.RedisKeyPrefix == "" {
			return fmt.Errorf("REDIS_KEY_PREFIX must not be empty for the %s storage driver", DriverRedis)
		}
	case DriverFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the %s storage driver", DriverFirestore)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive, got %d", c.JWTExpiry)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
