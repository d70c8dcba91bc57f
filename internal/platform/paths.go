package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HomePrefix marks a path relative to the user's home directory
const HomePrefix = "~"

// ExpandHome replaces a leading "~" with the user's home directory. Other
// paths are returned unchanged; nothing is created on disk.
func ExpandHome(path string) (string, error) {
	if path != HomePrefix && !strings.HasPrefix(path, HomePrefix+"/") && !strings.HasPrefix(path, HomePrefix+string(filepath.Separator)) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[len(HomePrefix):]), nil
}
