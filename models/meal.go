package models

import "strings"

// MealPeriod is one of the dining halls' named meal periods. The string
// value is sent verbatim as the menu API's "meal" parameter.
type MealPeriod string

const (
	Breakfast MealPeriod = "breakfast"
	Brunch    MealPeriod = "brunch"
	Lunch     MealPeriod = "lunch"
	Dinner    MealPeriod = "dinner"
)

// Title returns the capitalized form used in message headers.
func (m MealPeriod) Title() string {
	s := string(m)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ResolvedMeal is the output of the meal schedule resolver: the upcoming
// meal period and the day it is served on. DayOffset is 0 for today and 1
// when a late-night hour rolls over into the next calendar day's first meal.
type ResolvedMeal struct {
	Meal      MealPeriod `json:"meal"`
	DayOffset int        `json:"day_offset"`
}
