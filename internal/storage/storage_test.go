package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"menu-ocr/internal/menu"
)

func TestMenuStore(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewMenuStore(tempDir)
	if err != nil {
		t.Fatalf("Failed to create MenuStore: %v", err)
	}

	records := []menu.MenuRecord{
		{
			Date:           "2025-03-04",
			Day:            1,
			Menus:          []string{"제육볶음", "미역국"},
			Calorie:        850,
			Time:           2,
			RestaurantName: "학생_식당",
		},
	}

	t.Run("Save", func(t *testing.T) {
		path, err := store.Save("학생_식당", 2025, "03-04", records)
		if err != nil {
			t.Fatalf("Failed to save menu: %v", err)
		}

		expected := filepath.Join(tempDir, "학생_식당_2025-03-04.json")
		if path != expected {
			t.Errorf("Expected path '%s', got '%s'", expected, path)
		}
		if _, err := os.Stat(expected); os.IsNotExist(err) {
			t.Errorf("Expected file '%s' to be created, but it wasn't", expected)
		}
	})

	t.Run("OutputIsBareArrayWithLiteralKorean", func(t *testing.T) {
		data, err := os.ReadFile(store.Path("학생_식당", 2025, "03-04"))
		if err != nil {
			t.Fatalf("Failed to read saved menu: %v", err)
		}

		content := string(data)
		if !strings.HasPrefix(strings.TrimSpace(content), "[") {
			t.Error("Expected a bare JSON array, got something else")
		}
		if !strings.Contains(content, "제육볶음") {
			t.Error("Expected Korean menu text to be stored literally, not escaped")
		}
		if strings.Contains(content, `\u`) {
			t.Error("Expected no unicode escaping in output")
		}

		var loaded []menu.MenuRecord
		if err := json.Unmarshal(data, &loaded); err != nil {
			t.Fatalf("Failed to unmarshal saved menu: %v", err)
		}
		if len(loaded) != 1 || loaded[0].Day != 1 || loaded[0].Time != 2 {
			t.Errorf("Round-tripped record differs: %+v", loaded)
		}
	})

	t.Run("SaveCollision", func(t *testing.T) {
		before, err := os.ReadFile(store.Path("학생_식당", 2025, "03-04"))
		if err != nil {
			t.Fatalf("Failed to read existing file: %v", err)
		}

		_, err = store.Save("학생_식당", 2025, "03-04", nil)
		if !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("Expected ErrAlreadyExists, got %v", err)
		}

		after, err := os.ReadFile(store.Path("학생_식당", 2025, "03-04"))
		if err != nil {
			t.Fatalf("Failed to re-read existing file: %v", err)
		}
		if string(before) != string(after) {
			t.Error("Collision must leave the existing file's bytes unmodified")
		}
	})

	t.Run("DifferentWeekDoesNotCollide", func(t *testing.T) {
		if _, err := store.Save("학생_식당", 2025, "03-11", records); err != nil {
			t.Fatalf("Expected a different week to save cleanly, got %v", err)
		}
	})
}
