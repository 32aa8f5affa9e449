package app

import (
	"context"
	"fmt"

	"menu-ocr/internal/fetch"
	"menu-ocr/internal/menu"
	"menu-ocr/internal/notify"
	"menu-ocr/internal/storage"

	"github.com/rs/zerolog/log"
)

// App runs the extraction pipeline: fetch the sheet image, extract a weekly
// menu through the vision model, normalize it, and persist it. Strictly
// linear; the first failure aborts the run.
type App struct {
	fetcher   *fetch.Fetcher
	extractor *menu.Extractor
	store     *storage.MenuStore
	notifier  notify.Notifier
	imageURL  string
	year      int
}

// NewApp wires the pipeline components together. year is the calendar year
// stamped onto extracted MM-DD dates and filenames.
func NewApp(
	fetcher *fetch.Fetcher,
	extractor *menu.Extractor,
	store *storage.MenuStore,
	notifier notify.Notifier,
	imageURL string,
	year int,
) *App {
	return &App{
		fetcher:   fetcher,
		extractor: extractor,
		store:     store,
		notifier:  notifier,
		imageURL:  imageURL,
		year:      year,
	}
}

// Run executes one extraction end to end and returns the saved file path.
func (a *App) Run(ctx context.Context) (string, error) {
	log.Info().Str("url", a.imageURL).Msg("downloading menu image")
	img, err := a.fetcher.Fetch(a.imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch menu image: %w", err)
	}

	log.Info().Str("format", img.Format).Int("bytes", len(img.Data)).Msg("requesting menu extraction")
	week, err := a.extractor.Extract(ctx, img)
	if err != nil {
		return "", fmt.Errorf("failed to extract weekly menu: %w", err)
	}

	log.Info().
		Str("restaurant", week.RestaurantName).
		Str("week", week.StartDate+".."+week.EndDate).
		Int("items", len(week.Items)).
		Msg("extraction successful")

	records, err := menu.Normalize(week, a.year)
	if err != nil {
		return "", fmt.Errorf("failed to normalize weekly menu: %w", err)
	}

	path, err := a.store.Save(week.RestaurantName, a.year, week.StartDate, records)
	if err != nil {
		return "", fmt.Errorf("failed to save weekly menu: %w", err)
	}
	log.Info().Str("path", path).Msg("menu saved")

	// The file is already on disk; a missed announcement is not worth failing over.
	if err := a.notifier.MenuSaved(notify.SavedMenu{
		RestaurantName: week.RestaurantName,
		StartDate:      week.StartDate,
		EndDate:        week.EndDate,
		Path:           path,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to send notification")
	}

	return path, nil
}
