package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Records Refresher config
const RECORDS_REFRESHER_SCHEDULE_MINUTES = 30
const RECORDS_WINDOW_DAYS = 365

// Outbound API endpoints
const METEO_ENDPOINT_BASE_V1 = "https://meteo.internal/api/v1"
const COUNTER_ENDPOINT_BASE_V1 = "http://people-counter:9090/api/v1"

// Date layouts. Display equality defines day grouping; the API layout
// keys all weather lookups.
const DISPLAY_DATE_LAYOUT = "02/01/2006"
const API_DATE_LAYOUT = "2006-01-02"
const HOUR_LAYOUT = "15:04"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VISITOR_RECORDS_RESOURCE = "visitor_records.json"
const WEATHER_RESPONSE_RESOURCE = "weather_response.json"

// Plot output
const COMPARISON_CHART_FILE = "comparison_chart.html"

// LoadEnv loads a .env file when present. Missing files are fine; the
// constants above act as the fallback for everything.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func RedisAddress() string {
	return getenvDefault("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

func MeteoEndpoint() string {
	return getenvDefault("METEO_ENDPOINT", METEO_ENDPOINT_BASE_V1)
}

func CounterEndpoint() string {
	return getenvDefault("COUNTER_ENDPOINT", COUNTER_ENDPOINT_BASE_V1)
}

func ServerPort() string {
	return getenvDefault("PORT", "8080")
}

func AppEnv() string {
	return getenvDefault("APP_ENV", "dev")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
