package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"menu-ocr/internal/fetch"
	"menu-ocr/internal/menu"
	"menu-ocr/internal/notify"
	"menu-ocr/internal/storage"
)

// --- Mocks ---

type MockVisionGenerator struct {
	Response string
}

func (m *MockVisionGenerator) GenerateJSON(ctx context.Context, prompt string, img fetch.Image) (string, error) {
	return m.Response, nil
}

type RecordingNotifier struct {
	Saved []notify.SavedMenu
}

func (n *RecordingNotifier) MenuSaved(saved notify.SavedMenu) error {
	n.Saved = append(n.Saved, saved)
	return nil
}

// --- Tests ---

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
}

func TestRunEndToEnd(t *testing.T) {
	ts := newImageServer(t)
	defer ts.Close()

	tempDir := t.TempDir()
	store, err := storage.NewMenuStore(tempDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	gen := &MockVisionGenerator{
		Response: `{
			"items": [
				{"date": "03-04", "day": "Mon", "menus": ["Rice", "Soup"], "calorie": null, "time": "lunch"}
			],
			"restaurant_name": "학생_식당",
			"start_date": "03-04",
			"end_date": "03-08"
		}`,
	}
	notifier := &RecordingNotifier{}

	application := NewApp(fetch.NewFetcher(), menu.NewExtractor(gen), store, notifier, ts.URL+"/menu.png", 2025)

	path, err := application.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expectedPath := filepath.Join(tempDir, "학생_식당_2025-03-04.json")
	if path != expectedPath {
		t.Errorf("Expected path '%s', got '%s'", expectedPath, path)
	}

	data, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read saved menu: %v", err)
	}

	var got []menu.MenuRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to unmarshal saved menu: %v", err)
	}

	want := []menu.MenuRecord{
		{
			Date:           "2025-03-04",
			Day:            1,
			Menus:          []string{"Rice", "Soup"},
			Calorie:        0,
			Time:           2,
			RestaurantName: "학생_식당",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Saved records differ.\n got: %+v\nwant: %+v", got, want)
	}

	if len(notifier.Saved) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifier.Saved))
	}
	if notifier.Saved[0].RestaurantName != "학생_식당" || notifier.Saved[0].Path != expectedPath {
		t.Errorf("Unexpected notification: %+v", notifier.Saved[0])
	}
}

func TestRunFailsOnCollision(t *testing.T) {
	ts := newImageServer(t)
	defer ts.Close()

	store, err := storage.NewMenuStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	gen := &MockVisionGenerator{
		Response: `{"items": [], "restaurant_name": "교직원_식당", "start_date": "03-04", "end_date": "03-08"}`,
	}

	application := NewApp(fetch.NewFetcher(), menu.NewExtractor(gen), store, notify.Noop{}, ts.URL, 2025)

	if _, err := application.Run(context.Background()); err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	_, err = application.Run(context.Background())
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("Expected ErrAlreadyExists on second run, got %v", err)
	}
}

func TestRunFailsOnInvalidModelOutput(t *testing.T) {
	ts := newImageServer(t)
	defer ts.Close()

	store, err := storage.NewMenuStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	gen := &MockVisionGenerator{
		Response: `{"items": [{"date": "03-04", "day": "Someday", "menus": ["Rice"], "time": "lunch"}], "restaurant_name": "학생_식당", "start_date": "03-04", "end_date": "03-08"}`,
	}

	application := NewApp(fetch.NewFetcher(), menu.NewExtractor(gen), store, notify.Noop{}, ts.URL, 2025)

	if _, err := application.Run(context.Background()); err == nil {
		t.Fatal("Expected a validation error, got nil")
	}
}
