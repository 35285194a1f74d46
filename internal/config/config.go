package config

import (
	"fmt"
	"os"
	"strconv"

	"multikanban/internal/model"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBAutoMigrate bool
	ServerPort    string

	StorageDriver string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	LayoutFile     string
	DefaultActor   string
	JWTSecret      string
	JWTExpiryHours int
	LogLevel       string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5431"),
		DBUser:         getEnv("DB_USER", "kanban_user"),
		DBPassword:     getEnv("DB_PASSWORD", "kanban_pass"),
		DBName:         getEnv("DB_NAME", "kanban_db"),
		DBAutoMigrate:  getEnvBool("DB_AUTO_MIGRATE", true),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		StorageDriver:  getEnv("STORAGE_DRIVER", DriverPostgres),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPrefix:    getEnv("REDIS_PREFIX", ""),
		LayoutFile:     getEnv("LAYOUT_FILE", ""),
		DefaultActor:   getEnv("DEFAULT_ACTOR", "Current User"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// Layout returns the board layout from LayoutFile, or the default layout
// when no file is configured. Fields missing from the file keep their
// default values.
func (c *Config) Layout() (model.Layout, error) {
	layout := model.DefaultLayout()
	if c.LayoutFile == "" {
		return layout, nil
	}

	data, err := os.ReadFile(c.LayoutFile)
	if err != nil {
		return model.Layout{}, fmt.Errorf("read layout file: %w", err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return model.Layout{}, fmt.Errorf("parse layout file: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return model.Layout{}, err
	}
	return layout, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("⚠️  %s=%q is not a number, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("⚠️  %s=%q is not a boolean, using %t", key, value, defaultVal)
		return defaultVal
	}
	return b
}
