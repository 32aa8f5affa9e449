package menu

import "fmt"

// Normalize converts an extracted weekly menu into its persisted records:
// the year is prefixed onto the MM-DD dates, day and time symbols become
// indices, missing calories become 0, and the weekly restaurant name is
// stamped onto every record. Input order is preserved.
//
// A week spanning a December/January boundary gets the single given year on
// every date; the sheets carry no year, so there is nothing better to do.
func Normalize(week WeeklyMenu, year int) ([]MenuRecord, error) {
	records := make([]MenuRecord, 0, len(week.Items))
	for _, item := range week.Items {
		day, err := WeekdayIndex(item.Day)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize entry for %s: %w", item.Date, err)
		}

		mealTime, err := MealTimeIndex(item.Time)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize entry for %s: %w", item.Date, err)
		}

		calorie := 0
		if item.Calorie != nil {
			calorie = *item.Calorie
		}

		menus := item.Menus
		if menus == nil {
			menus = []string{}
		}

		records = append(records, MenuRecord{
			Date:           fmt.Sprintf("%d-%s", year, item.Date),
			Day:            day,
			Menus:          menus,
			Calorie:        calorie,
			Time:           mealTime,
			RestaurantName: week.RestaurantName,
		})
	}
	return records, nil
}
