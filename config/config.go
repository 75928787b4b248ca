package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type StorageConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

type AppConfig struct {
	Port           string
	Database       DatabaseConfig
	Storage        StorageConfig
	JWTSecret      string
	Environment    string
	MaxUploadBytes int64
	WorkerCount    int
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	password := getEnv("DB_PASSWORD", "")

	if password == "" {
		fmt.Println("Warning: DB_PASSWORD environment variable is not set.")
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: password,
		DBName:   getEnv("DB_NAME", "hirescreen"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetStorageConfig() StorageConfig {
	return StorageConfig{
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Region:    getEnv("AWS_REGION", ""),
		Bucket:    getEnv("AWS_S3_BUCKET", ""),
	}
}

func GetAppConfig() AppConfig {
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	workers, _ := strconv.Atoi(getEnv("SCREENING_WORKERS", "4"))
	if workers < 1 {
		workers = 1
	}

	return AppConfig{
		Port:           getEnv("PORT", "8081"),
		Database:       GetDatabaseConfig(),
		Storage:        GetStorageConfig(),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		MaxUploadBytes: maxUpload,
		WorkerCount:    workers,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
