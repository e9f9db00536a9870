package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath            string
	LogDir              string
	CatalogPath         string
	Workers             int
	Format              string
	RequireLocale       bool
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		logDir = filepath.Join(dataPath, "logs")
	}

	workers := getEnvInt("SHIPTRACKER_WORKERS", runtime.NumCPU())
	if workers < 1 {
		log.Warn().Int("workers", workers).Msg("SHIPTRACKER_WORKERS must be positive, extracting sequentially")
		workers = 1
	}

	// Relative catalog paths live under the data directory.
	catalogPath := getEnv("SHIPTRACKER_CATALOG", "")
	if catalogPath != "" && !filepath.IsAbs(catalogPath) {
		catalogPath = filepath.Join(dataPath, catalogPath)
	}

	cfg := &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		CatalogPath:         catalogPath,
		Workers:             workers,
		Format:              getEnv("SHIPTRACKER_FORMAT", "text"),
		RequireLocale:       getEnvBool("SHIPTRACKER_REQUIRE_LOCALE", false),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-integer environment value")
	}
	return fallback
}
