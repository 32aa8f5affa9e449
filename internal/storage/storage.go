package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"menu-ocr/internal/menu"
)

// ErrAlreadyExists is returned when a menu file for the same restaurant and
// week start is already on disk. Existing files are never overwritten; the
// filename collision is the "already processed" ledger.
var ErrAlreadyExists = errors.New("menu file already exists")

// MenuStore provides file-based storage for normalized weekly menus.
type MenuStore struct {
	basePath string
}

// NewMenuStore creates a new MenuStore and ensures the base directory exists.
func NewMenuStore(basePath string) (*MenuStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &MenuStore{basePath: basePath}, nil
}

// Path returns the target file path for a restaurant's week. startDate is
// the sheet's raw MM-DD week start.
func (s *MenuStore) Path(restaurantName string, year int, startDate string) string {
	filename := fmt.Sprintf("%s_%d-%s.json", restaurantName, year, startDate)
	return filepath.Join(s.basePath, filename)
}

// Save writes the normalized records as an indented JSON array. The file is
// created exclusively; if it already exists, Save fails with ErrAlreadyExists
// and leaves the existing file untouched.
func (s *MenuStore) Save(restaurantName string, year int, startDate string, records []menu.MenuRecord) (string, error) {
	filePath := s.Path(restaurantName, year, startDate)

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrAlreadyExists, filePath)
		}
		return "", fmt.Errorf("failed to create menu file %s: %w", filePath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Menu text is Korean; keep it readable instead of \u-escaping it.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("failed to write menu file %s: %w", filePath, err)
	}

	return filePath, nil
}
