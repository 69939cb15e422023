package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string)

	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// LoadOptionalEnv returns the variables that are set, skipping empty ones
func LoadOptionalEnv(vars []string) map[string]string {
	_ = godotenv.Load()

	envVars := make(map[string]string)
	for _, key := range vars {
		if value := os.Getenv(key); value != "" {
			envVars[key] = value
		}
	}
	return envVars
}

// FormatSeconds renders a schedule timestamp as SS.ss
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%05.2f", seconds)
}

// ReadLines reads a text file into lines without line terminators
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}
