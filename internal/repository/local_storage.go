package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pdf-word-converter/internal/domain"
)

// LocalStorage implements domain.FileStorage on a local directory.
// Converted files are ephemeral: every Put schedules a best-effort delete
// after the configured retention. Locators are public download URLs served
// by the files endpoint.
type LocalStorage struct {
	dir       string
	baseURL   string
	retention time.Duration
	logger    domain.Logger
}

// NewLocalStorage creates the storage collaborator rooted at dir.
func NewLocalStorage(dir, baseURL string, retention time.Duration, logger domain.Logger) *LocalStorage {
	return &LocalStorage{
		dir:       dir,
		baseURL:   strings.TrimRight(baseURL, "/"),
		retention: retention,
		logger:    logger,
	}
}

// Put writes one output file and returns its download locator.
func (s *LocalStorage) Put(data []byte, filename string) (string, error) {
	// Callers build filenames from uuids, but never trust a path here.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid output filename %q", filename)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	if s.retention > 0 {
		time.AfterFunc(s.retention, func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				s.logger.Warn("Failed to clean up expired file", "file", name, "error", err)
			}
		})
	}

	s.logger.Debug("Stored converted file", "file", name, "bytes", len(data))
	return s.baseURL + "/files/" + name, nil
}

// Open resolves a stored file by name for the download endpoint.
// Path-escaping names are rejected before touching the filesystem.
func (s *LocalStorage) Open(filename string) (string, error) {
	name := filepath.Base(filename)
	if name != filename || strings.Contains(filename, "..") {
		return "", domain.ErrFileNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrFileNotFound
	}
	return path, nil
}
