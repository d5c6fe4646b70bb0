package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoHost     string
	MongoPort     string
	MongoUser     string
	MongoPassword string
	MongoName     string
	AppHost       string
	ServerPort    string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	MongoHost = getEnv("MONGO_HOST", "localhost")
	MongoPort = getEnv("MONGO_PORT", "27017")
	MongoUser = getEnv("MONGO_USER", "adminRoot")
	MongoPassword = getEnv("MONGO_PASSWORD", "adminRoot100")
	MongoName = getEnv("MONGO_DB", "survey_db")

	AppHost = getEnv("APP_HOST", "0.0.0.0")
	ServerPort = getEnv("SERVER_PORT", "8000")
}

// MongoURI assembles the connection string from the loaded config values.
func MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/", MongoUser, MongoPassword, MongoHost, MongoPort)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
