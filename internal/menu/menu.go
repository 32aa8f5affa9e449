package menu

import "fmt"

// Restaurant identities that appear on the menu sheets. The dormitory hall
// prints two sections; the Halal one must keep its own identity.
const (
	RestaurantDormKorean = "기숙사_식당_한식"
	RestaurantDormHalal  = "기숙사_식당_할랄"
	RestaurantStudent    = "학생_식당"
	RestaurantStaff      = "교직원_식당"
)

// RestaurantNames lists every known restaurant identity.
var RestaurantNames = []string{
	RestaurantDormKorean,
	RestaurantDormHalal,
	RestaurantStudent,
	RestaurantStaff,
}

// DailyMenu is one meal-time slot on one day, as extracted from the sheet.
// Dates are MM-DD; day and time are still symbolic.
type DailyMenu struct {
	Date    string   `json:"date"`
	Day     string   `json:"day"`
	Menus   []string `json:"menus"`
	Calorie *int     `json:"calorie"`
	Time    string   `json:"time"`
}

// WeeklyMenu is the structured result of extracting one menu sheet.
type WeeklyMenu struct {
	Items          []DailyMenu `json:"items"`
	RestaurantName string      `json:"restaurant_name"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
}

// MenuRecord is the persisted form of one meal-time slot.
type MenuRecord struct {
	Date           string   `json:"date"`
	Day            int      `json:"day"`
	Menus          []string `json:"menus"`
	Calorie        int      `json:"calorie"`
	Time           int      `json:"time"`
	RestaurantName string   `json:"restaurant_name"`
}

var weekdayIndex = map[string]int{
	"Mon": 1, "Tue": 2, "Wed": 3, "Thu": 4, "Fri": 5, "Sat": 6, "Sun": 7,
}

var mealTimeIndex = map[string]int{
	"breakfast": 1, "lunch": 2, "dinner": 3,
}

// WeekdayIndex maps a weekday symbol to its index (Mon=1 .. Sun=7).
func WeekdayIndex(day string) (int, error) {
	i, ok := weekdayIndex[day]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", day)
	}
	return i, nil
}

// MealTimeIndex maps a meal time symbol to its index (breakfast=1, lunch=2, dinner=3).
func MealTimeIndex(mealTime string) (int, error) {
	i, ok := mealTimeIndex[mealTime]
	if !ok {
		return 0, fmt.Errorf("unknown meal time %q", mealTime)
	}
	return i, nil
}
