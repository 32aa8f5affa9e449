package notify

import "fmt"

// SavedMenu describes a freshly written weekly menu file.
type SavedMenu struct {
	RestaurantName string
	StartDate      string
	EndDate        string
	Path           string
}

// Notifier announces newly saved weekly menus.
type Notifier interface {
	MenuSaved(saved SavedMenu) error
}

// Noop is a Notifier that does nothing, used when Telegram is not configured.
type Noop struct{}

func (Noop) MenuSaved(SavedMenu) error { return nil }

func (s SavedMenu) message() string {
	return fmt.Sprintf("새 식단표가 저장되었습니다: %s (%s ~ %s)\n%s",
		s.RestaurantName, s.StartDate, s.EndDate, s.Path)
}
