// Package config collects runtime settings from the environment, with
// optional .env loading for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ModelDir            string  // directory holding network weight/config pairs
	NamesPath           string  // class-name file, one label per line
	ConfidenceThreshold float64 // minimum class score to keep a model detection
	NMSThreshold        float64 // IoU above which overlapping boxes are merged
	MinDetections       int     // model result count below which heuristics run
	WebhookURL          string  // empty disables notifications
	WebhookImage        bool    // embed a thumbnail in webhook payloads
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ModelDir:            getEnv("MODEL_DIR", "/opt/yolo"),
		NamesPath:           getEnv("NAMES_PATH", "/opt/yolo/coco.names"),
		ConfidenceThreshold: getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.5),
		NMSThreshold:        getEnvAsFloat("NMS_THRESHOLD", 0.4),
		MinDetections:       getEnvAsInt("MIN_DETECTIONS", 2),
		WebhookURL:          getEnv("WEBHOOK_URL", ""),
		WebhookImage:        getEnvAsBool("WEBHOOK_IMAGE", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
