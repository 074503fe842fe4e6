package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const maxAPIKeyFileBytes int64 = 10 * 1024

// ReadAPIKeyFile reads a key from a small regular file. A leading "~/" is
// expanded to the user's home directory and surrounding whitespace is
// trimmed.
func ReadAPIKeyFile(path string) (string, error) {
	clean, err := expandHome(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve api key file: %w", err)
	}

	f, err := os.Open(clean)
	if err != nil {
		return "", fmt.Errorf("failed to open api key file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat api key file: %w", err)
	}
	if !st.Mode().IsRegular() {
		return "", errors.New("api key file must be a regular file")
	}

	b, err := io.ReadAll(io.LimitReader(f, maxAPIKeyFileBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}
	if int64(len(b)) > maxAPIKeyFileBytes {
		return "", fmt.Errorf("api key file too large (max %d bytes)", maxAPIKeyFileBytes)
	}

	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", errors.New("api key file is empty")
	}
	return key, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
