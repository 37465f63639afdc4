package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ovhcred/internal/credential"
)

// loadCredential resolves the --config flag (tilde-expanded) to a
// credential, falling back to the default file when the flag is empty.
// It returns the path that was used alongside the credential.
func loadCredential(configFlag string) (*credential.Credential, string, error) {
	path := strings.TrimSpace(configFlag)
	if path == "" {
		cred, err := credential.FromDefaultFile()
		return cred, credential.DefaultPath, err
	}
	expanded, err := expandPath(path)
	if err != nil {
		return nil, path, err
	}
	cred, err := credential.FromFile(expanded)
	return cred, expanded, err
}

func expandPath(pathValue string) (string, error) {
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}

// mask hides all but a short prefix of a secret value.
func mask(value string) string {
	if value == "" {
		return "(empty)"
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}
