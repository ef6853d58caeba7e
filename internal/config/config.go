package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Секрет для подписи сессионных cookie. Если не задан,
	// при старте генерируется случайный ключ.
	SessionSecret string
}

// Load читает настройки из .env (если есть) и переменных окружения.
func Load() Config {
	// .env нужен только для локальной разработки, его отсутствие не ошибка
	_ = godotenv.Load()

	return Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "1234"),
		DBName:        getEnv("DB_NAME", "quizbank"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
}

// DSN собирает строку подключения к PostgreSQL.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
