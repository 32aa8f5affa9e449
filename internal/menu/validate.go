package menu

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed weekly_menu_schema.json
var weeklyMenuSchema string

var compiledSchema = jsonschema.MustCompileString("weekly_menu_schema.json", weeklyMenuSchema)

// ParseWeeklyMenu parses the model's raw JSON response and validates it
// against the weekly menu schema before unmarshalling.
func ParseWeeklyMenu(raw string) (WeeklyMenu, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return WeeklyMenu{}, fmt.Errorf("model response is not valid JSON: %w", err)
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return WeeklyMenu{}, fmt.Errorf("model response does not match the weekly menu schema: %w", err)
	}

	var week WeeklyMenu
	if err := json.Unmarshal([]byte(raw), &week); err != nil {
		return WeeklyMenu{}, fmt.Errorf("failed to unmarshal weekly menu: %w", err)
	}
	return week, nil
}
