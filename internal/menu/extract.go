package menu

import (
	"context"
	_ "embed"
	"fmt"

	"menu-ocr/internal/fetch"
	"menu-ocr/internal/llm"

	"github.com/google/generative-ai-go/genai"
)

// ocrPrompt instructs the model in the menus' source language. It carries the
// business rules: fold the a-la-carte corner (실속일품코너) into the day's
// menus, drop the salad bar (샐러드바), and report the Halal dormitory
// section under its own restaurant identity.
//
//go:embed ocr_prompt.txt
var ocrPrompt string

// Extractor turns a menu sheet image into a validated WeeklyMenu.
type Extractor struct {
	gen llm.VisionGenerator
}

// NewExtractor creates a new Extractor on top of a vision model.
func NewExtractor(gen llm.VisionGenerator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract sends the image to the model and validates its JSON response.
func (e *Extractor) Extract(ctx context.Context, img fetch.Image) (WeeklyMenu, error) {
	raw, err := e.gen.GenerateJSON(ctx, ocrPrompt, img)
	if err != nil {
		return WeeklyMenu{}, fmt.Errorf("failed to get model response: %w", err)
	}

	week, err := ParseWeeklyMenu(raw)
	if err != nil {
		return WeeklyMenu{}, err
	}
	return week, nil
}

// ResponseSchema is the weekly menu shape the model is constrained to,
// mirroring the validation schema used on the way back in.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {
							Type:        genai.TypeString,
							Description: "Date of the menu. Format: MM-DD.",
						},
						"day": {
							Type:        genai.TypeString,
							Description: "Day of the week.",
							Enum:        []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
						},
						"menus": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "List of menu items for the day.",
						},
						"calorie": {
							Type:        genai.TypeInteger,
							Nullable:    true,
							Description: "Total calories for the day's menu. If not available, set to 0.",
						},
						"time": {
							Type:        genai.TypeString,
							Description: "Meal time.",
							Enum:        []string{"breakfast", "lunch", "dinner"},
						},
					},
					Required: []string{"date", "day", "menus", "time"},
				},
			},
			"restaurant_name": {
				Type:        genai.TypeString,
				Description: fmt.Sprintf("Name of the restaurant. One of %s, %s, %s, %s.", RestaurantDormKorean, RestaurantDormHalal, RestaurantStudent, RestaurantStaff),
				Enum:        RestaurantNames,
			},
			"start_date": {
				Type:        genai.TypeString,
				Description: "Start date of the week. Format: MM-DD.",
			},
			"end_date": {
				Type:        genai.TypeString,
				Description: "End date of the week. Format: MM-DD.",
			},
		},
		Required: []string{"items", "restaurant_name", "start_date", "end_date"},
	}
}
