package main

import (
	"fmt"
	"os"
	"strings"
)

// loadSessionID reads the session credential from path, trimming surrounding
// whitespace. The file holds a single pre-obtained Rails session cookie value.
func loadSessionID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading session ID file %s: %w", path, err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", fmt.Errorf("session ID file %s is empty", path)
	}
	return id, nil
}

// loadContentFile reads the entire upload body from path.
func loadContentFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading content file %s: %w", path, err)
	}
	return string(data), nil
}
