package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogFilePath          string
	ServerPort           string
	DBPath               string
	JWTSecret            string
	JWTExpirationMinutes int
	ChartWidth           int
	ChartHeight          int
	GRPCAddress          string
	RequestTimeout       time.Duration
}

const DefaultDBPath = "file:calculator?mode=memory&cache=shared"

var AppConfig *Config

// InitConfig читает .env (если он есть) и переменные окружения
func InitConfig(configPath string) {
	AppConfig = &Config{}

	if _, err := os.Stat(configPath); err == nil {
		if err := godotenv.Load(configPath); err != nil {
			log.Fatal("Error loading .env file")
		}
	} else {
		log.Println(configPath + " not found, using environment")
	}

	AppConfig.LogFilePath = os.Getenv("LOG_FILE_PATH")

	AppConfig.ServerPort = getString("SERVER_PORT", "8080")
	AppConfig.DBPath = getString("DB_PATH", DefaultDBPath)
	AppConfig.GRPCAddress = getString("GRPC_ADDRESS", "localhost:8081")

	AppConfig.JWTSecret = os.Getenv("JWT_SECRET")
	if AppConfig.JWTSecret == "" {
		log.Println("JWT_SECRET not set. Generated a random secret, tokens will not survive a restart")
		AppConfig.JWTSecret = randomSecret()
	}
	AppConfig.JWTExpirationMinutes = getInt("JWT_EXPIRATION_MINUTES", 60)

	AppConfig.ChartWidth = getInt("CHART_WIDTH", 600)
	AppConfig.ChartHeight = getInt("CHART_HEIGHT", 300)

	AppConfig.RequestTimeout = time.Duration(getInt("REQUEST_TIMEOUT_MS", 5000)) * time.Millisecond
}

func getString(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Printf("%s not set. Auto set to %s", key, def)
	return def
}

func getInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("%s is not a positive number. Auto set to %d", key, def)
		return def
	}
	return value
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal("failed to generate JWT secret")
	}
	return hex.EncodeToString(buf)
}
