package internal

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	ConfigHomeEnv     = "REASONING_CONFIG_HOME"
	DataHomeEnv       = "REASONING_DATA_HOME"
	DefaultConfigDir  = ".reasoning-cli"
	DefaultDataDir    = "history"
	SlugPostfixLength = 4
)

func GenerateUniqueSlug(prefix string) string {
	guid := uuid.New()
	return prefix + guid.String()[:SlugPostfixLength]
}

func GetConfigHome() (string, error) {
	if tmp := os.Getenv(ConfigHomeEnv); tmp != "" {
		return tmp, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

func GetDataHome() (string, error) {
	if tmp := os.Getenv(DataHomeEnv); tmp != "" {
		return tmp, nil
	}

	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, DefaultDataDir), nil
}
