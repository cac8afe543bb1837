package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPath          string
	DBLogLevel      string
	RedisHost       string
	RedisPort       string
	SessionSecret   string
	GinMode         string
	ServerAddr      string
	ShutdownTimeout time.Duration
	UpcomingDays    int
	OpenAIAPIKey    string
}

func Load() *Config {
	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "taskuser"),
		DBPassword:      getEnv("DB_PASSWORD", "taskpassword"),
		DBName:          getEnv("DB_NAME", "project_tasks"),
		DBPath:          getEnv("DB_PATH", "project_tasks.db"),
		DBLogLevel:      getEnv("DB_LOG_LEVEL", "warn"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		SessionSecret:   getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		UpcomingDays:    getEnvInt("UPCOMING_DAYS", 7),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
