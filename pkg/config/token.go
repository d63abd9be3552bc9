package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrTokenNotFound = errors.New("token file not found")

// FindToken reads the API token from tokenFile. A bare filename is
// searched for in the current directory and every parent up to the home
// directory; a path with a directory component is read as given.
func FindToken(tokenFile string) (string, error) {
	if tokenFile == "" {
		tokenFile = DefaultTokenFile
	}
	notFound := fmt.Errorf("%w: %s", ErrTokenNotFound, tokenFile)

	if filepath.Base(tokenFile) != tokenFile {
		if !isFile(tokenFile) {
			return "", notFound
		}
		return readToken(tokenFile)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not determine working directory: %w", err)
	}
	home, cwd = resolve(home), resolve(cwd)

	rel, err := filepath.Rel(home, cwd)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", notFound
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, tokenFile)
		if isFile(candidate) {
			return readToken(candidate)
		}
		if dir == home || dir == filepath.Dir(dir) {
			break
		}
	}
	return "", notFound
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", path)
	}
	return token, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// resolve follows symlinks so that home and cwd compare reliably.
func resolve(path string) string {
	if p, err := filepath.EvalSymlinks(path); err == nil {
		return p
	}
	return filepath.Clean(path)
}
