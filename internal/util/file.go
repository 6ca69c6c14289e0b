package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ResolvePath expands a leading "~" to the home directory of the
// current user and resolves symlinks, returning the input unchanged
// if either step fails.
func ResolvePath(path string) string {
	expanded, err := homedir.Expand(path)
	if err == nil {
		path = expanded
	}

	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		return evaluatedPath
	}
	return path
}

func ReadIntFromFile(path string) (value int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	value, err = strconv.Atoi(text)
	return value, err
}

// WriteIntToFile writes a single integer to the given file path.
func WriteIntToFile(value int, path string) error {
	path = ResolvePath(path)
	valueAsString := fmt.Sprintf("%d", value)
	return os.WriteFile(path, []byte(valueAsString), 0644)
}

// WriteStringToFile writes a single string value to the given file path.
func WriteStringToFile(value string, path string) error {
	path = ResolvePath(path)
	return os.WriteFile(path, []byte(value), 0644)
}
