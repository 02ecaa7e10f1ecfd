package config

import (
	"cmp"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultTrimPercent excludes the 10% highest and 10% lowest values.
const DefaultTrimPercent = 20

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath    string
	LogDir      string
	TrimPercent int
	// ParamsFile is the optional configure file path.
	ParamsFile string
}

// Load reads .env files and the environment. Values already present in the
// environment win over both files, and a binary-adjacent .env wins over one
// in the working directory.
//
// Nothing is created on disk here: logging.New owns the log directory and
// checks that it is writable.
func Load() (*AppConfig, error) {
	exeDir := ""
	if exePath, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exePath)
	}
	for _, envPath := range envFiles(exeDir) {
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded .env")
		}
	}

	dataPath := cmp.Or(os.Getenv("DATA_PATH"), exeDir, ".")
	logDir := cmp.Or(os.Getenv("LOGS_FOLDER"), filepath.Join(dataPath, "logs"))

	return &AppConfig{
		DataPath:    dataPath,
		LogDir:      logDir,
		TrimPercent: getEnvInt("TRIM_PERCENT", DefaultTrimPercent),
		ParamsFile:  getEnv("SEGSTATS_CONFIG", ""),
	}, nil
}

// envFiles lists candidate .env files, highest priority first.
func envFiles(exeDir string) []string {
	if exeDir == "" {
		return []string{".env"}
	}
	return []string{filepath.Join(exeDir, ".env"), ".env"}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Int("default", fallback).Msg("Ignoring non-integer value")
		return fallback
	}
	return i
}
