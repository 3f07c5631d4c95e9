// Package schedule resolves which meal is "upcoming" at a dining hall for a
// given wall-clock time, under the published per-location, per-day-type meal
// windows.
package schedule

import (
	"time"

	"menu-bot/models"

	"go.uber.org/zap"
)

// HourWindow is an inclusive-start, exclusive-end range of wall-clock hours.
type HourWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the hour falls inside the window.
func (w HourWindow) Contains(hour int) bool {
	return w.Start <= hour && hour < w.End
}

// Rule maps an hour window to the upcoming meal. DayOffset is 1 for the
// late-night windows that roll over into the next calendar day's meal. When
// SpecialDay is set and matches the current weekday, SpecialMeal is returned
// instead of Meal (Friday nights roll into Saturday brunch, Sunday nights
// into Monday breakfast).
type Rule struct {
	Window      HourWindow        `json:"window"`
	Meal        models.MealPeriod `json:"meal"`
	DayOffset   int               `json:"day_offset"`
	SpecialDay  *time.Weekday     `json:"special_day,omitempty"`
	SpecialMeal models.MealPeriod `json:"special_meal,omitempty"`
}

// DayType splits the week into the two published schedule variants.
type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

// DayTypes lists both variants, for iteration.
var DayTypes = []DayType{Weekday, Weekend}

func dayTypeOf(day time.Weekday) DayType {
	if day == time.Saturday || day == time.Sunday {
		return Weekend
	}
	return Weekday
}

func weekdayPtr(day time.Weekday) *time.Weekday { return &day }

// mealSchedule is the published schedule, one ordered rule list per
// (location, day type). Rules are evaluated first match wins; the windows of
// each list partition the 24-hour day.
var mealSchedule = map[models.Location]map[DayType][]Rule{
	models.Moulton: {
		Weekday: {
			{Window: HourWindow{0, 10}, Meal: models.Breakfast},
			{Window: HourWindow{10, 14}, Meal: models.Lunch},
			{Window: HourWindow{14, 19}, Meal: models.Dinner},
			{Window: HourWindow{19, 24}, Meal: models.Breakfast, DayOffset: 1,
				SpecialDay: weekdayPtr(time.Friday), SpecialMeal: models.Brunch},
		},
		Weekend: {
			{Window: HourWindow{0, 11}, Meal: models.Brunch},
			{Window: HourWindow{11, 13}, Meal: models.Lunch},
			{Window: HourWindow{13, 19}, Meal: models.Dinner},
			{Window: HourWindow{19, 24}, Meal: models.Brunch, DayOffset: 1,
				SpecialDay: weekdayPtr(time.Sunday), SpecialMeal: models.Breakfast},
		},
	},
	models.Thorne: {
		Weekday: {
			{Window: HourWindow{0, 10}, Meal: models.Breakfast},
			{Window: HourWindow{10, 14}, Meal: models.Lunch},
			{Window: HourWindow{14, 20}, Meal: models.Dinner},
			{Window: HourWindow{20, 24}, Meal: models.Breakfast, DayOffset: 1,
				SpecialDay: weekdayPtr(time.Friday), SpecialMeal: models.Brunch},
		},
		Weekend: {
			{Window: HourWindow{0, 14}, Meal: models.Brunch},
			{Window: HourWindow{14, 20}, Meal: models.Dinner},
			{Window: HourWindow{20, 24}, Meal: models.Brunch, DayOffset: 1,
				SpecialDay: weekdayPtr(time.Sunday), SpecialMeal: models.Breakfast},
		},
	},
}

// Resolver determines the upcoming meal for a dining hall at a given
// wall-clock time. The next meal is considered "upcoming" for the whole of
// its active window; minutes are ignored.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver constructs a Resolver with an injected logger.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve maps (location, now) to the upcoming meal and the day it belongs
// to. The rule lists are exhaustive over 0..23, so the trailing fallback only
// fires on a schedule configuration bug.
func (r *Resolver) Resolve(location models.Location, now time.Time) models.ResolvedMeal {
	hour := now.Hour()
	day := now.Weekday()

	for _, rule := range RulesFor(location, dayTypeOf(day)) {
		if !rule.Window.Contains(hour) {
			continue
		}
		if rule.SpecialDay != nil && *rule.SpecialDay == day {
			return models.ResolvedMeal{Meal: rule.SpecialMeal, DayOffset: rule.DayOffset}
		}
		return models.ResolvedMeal{Meal: rule.Meal, DayOffset: rule.DayOffset}
	}

	r.logger.Warn("no schedule rule matched, defaulting to breakfast",
		zap.String("location", location.Name()),
		zap.Int("hour", hour),
		zap.String("day", day.String()),
	)
	return models.ResolvedMeal{Meal: models.Breakfast, DayOffset: 0}
}

// RulesFor exposes the schedule table for a location and day type, for the
// status endpoint and the schedule plot.
func RulesFor(location models.Location, dayType DayType) []Rule {
	return mealSchedule[location][dayType]
}
