package schedule

import (
	"fmt"
	"testing"
	"time"

	"menu-bot/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// The first week of January 2025 covers every weekday: Wed Jan 1 ... Tue Jan 7.
func dayAt(day time.Weekday, hour int) time.Time {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) // Wednesday
	offset := (int(day) - int(time.Wednesday) + 7) % 7
	return base.AddDate(0, 0, offset).Add(time.Duration(hour) * time.Hour)
}

func TestDayAtHelper(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.Equal(t, d, dayAt(d, 12).Weekday())
		assert.Equal(t, 12, dayAt(d, 12).Hour())
	}
}

// Every (location, day, hour) combination must resolve through exactly one
// rule: the windows of each rule list partition the 24-hour day with no gaps
// and no overlaps.
func TestResolve_PartitionsEveryHour(t *testing.T) {
	for _, location := range models.AllLocations {
		for _, dayType := range DayTypes {
			rules := RulesFor(location, dayType)
			for hour := 0; hour < 24; hour++ {
				matches := 0
				for _, rule := range rules {
					if rule.Window.Contains(hour) {
						matches++
					}
				}
				assert.Equalf(t, 1, matches,
					"%s %s hour %d should match exactly one rule", location.Name(), dayType, hour)
			}
		}
	}
}

func TestResolve_WeekdayWindows_Moulton(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	tests := []struct {
		hour       int
		wantMeal   models.MealPeriod
		wantOffset int
	}{
		{0, models.Breakfast, 0},
		{9, models.Breakfast, 0},
		{10, models.Lunch, 0}, // exclusive upper bound: 10 is lunch, not breakfast
		{13, models.Lunch, 0},
		{14, models.Dinner, 0}, // 14 is dinner, not lunch
		{18, models.Dinner, 0},
		{19, models.Breakfast, 1}, // 19 rolls into tomorrow
		{23, models.Breakfast, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour_%d", tt.hour), func(t *testing.T) {
			got := resolver.Resolve(models.Moulton, dayAt(time.Monday, tt.hour))
			assert.Equal(t, tt.wantMeal, got.Meal)
			assert.Equal(t, tt.wantOffset, got.DayOffset)
		})
	}
}

func TestResolve_WeekdayWindows_Thorne(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	// Thorne's dinner runs an hour later than Moulton's.
	got := resolver.Resolve(models.Thorne, dayAt(time.Tuesday, 19))
	assert.Equal(t, models.ResolvedMeal{Meal: models.Dinner, DayOffset: 0}, got)

	got = resolver.Resolve(models.Thorne, dayAt(time.Tuesday, 20))
	assert.Equal(t, models.ResolvedMeal{Meal: models.Breakfast, DayOffset: 1}, got)
}

func TestResolve_WeekendWindows(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	tests := []struct {
		name     string
		location models.Location
		day      time.Weekday
		hour     int
		want     models.ResolvedMeal
	}{
		{"moulton brunch", models.Moulton, time.Saturday, 8, models.ResolvedMeal{Meal: models.Brunch}},
		{"moulton lunch", models.Moulton, time.Saturday, 11, models.ResolvedMeal{Meal: models.Lunch}},
		{"moulton lunch end", models.Moulton, time.Saturday, 13, models.ResolvedMeal{Meal: models.Dinner}},
		{"moulton dinner", models.Moulton, time.Saturday, 18, models.ResolvedMeal{Meal: models.Dinner}},
		{"thorne brunch covers lunch hours", models.Thorne, time.Saturday, 12, models.ResolvedMeal{Meal: models.Brunch}},
		{"thorne dinner", models.Thorne, time.Saturday, 14, models.ResolvedMeal{Meal: models.Dinner}},
		{"thorne late night", models.Thorne, time.Saturday, 20, models.ResolvedMeal{Meal: models.Brunch, DayOffset: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.location, dayAt(tt.day, tt.hour)))
		})
	}
}

// Friday nights roll into Saturday brunch rather than a weekday breakfast.
func TestResolve_FridayNightSpecial(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	got := resolver.Resolve(models.Moulton, dayAt(time.Friday, 20))
	assert.Equal(t, models.ResolvedMeal{Meal: models.Brunch, DayOffset: 1}, got)

	got = resolver.Resolve(models.Moulton, dayAt(time.Monday, 20))
	assert.Equal(t, models.ResolvedMeal{Meal: models.Breakfast, DayOffset: 1}, got)
}

// Sunday nights roll into Monday breakfast rather than a weekend brunch.
func TestResolve_SundayNightSpecial(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	got := resolver.Resolve(models.Moulton, dayAt(time.Sunday, 20))
	assert.Equal(t, models.ResolvedMeal{Meal: models.Breakfast, DayOffset: 1}, got)

	got = resolver.Resolve(models.Moulton, dayAt(time.Saturday, 20))
	assert.Equal(t, models.ResolvedMeal{Meal: models.Brunch, DayOffset: 1}, got)
}

func TestResolve_Scenarios(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	tests := []struct {
		name     string
		location models.Location
		day      time.Weekday
		hour     int
		want     models.ResolvedMeal
	}{
		{"moulton wednesday noon", models.Moulton, time.Wednesday, 12, models.ResolvedMeal{Meal: models.Lunch, DayOffset: 0}},
		{"thorne saturday morning", models.Thorne, time.Saturday, 9, models.ResolvedMeal{Meal: models.Brunch, DayOffset: 0}},
		{"moulton friday night", models.Moulton, time.Friday, 21, models.ResolvedMeal{Meal: models.Brunch, DayOffset: 1}},
		{"thorne sunday night", models.Thorne, time.Sunday, 22, models.ResolvedMeal{Meal: models.Breakfast, DayOffset: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.location, dayAt(tt.day, tt.hour)))
		})
	}
}

// Resolving the same frozen timestamp twice yields identical results.
func TestResolve_Pure(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	for _, location := range models.AllLocations {
		for d := time.Sunday; d <= time.Saturday; d++ {
			for hour := 0; hour < 24; hour++ {
				at := dayAt(d, hour)
				first := resolver.Resolve(location, at)
				second := resolver.Resolve(location, at)
				assert.Equal(t, first, second)
			}
		}
	}
}

// Minutes are ignored: 12:59 resolves like 12:00.
func TestResolve_IgnoresMinutes(t *testing.T) {
	resolver := NewResolver(zap.NewNop())

	at := dayAt(time.Wednesday, 12).Add(59 * time.Minute)
	assert.Equal(t, models.ResolvedMeal{Meal: models.Lunch, DayOffset: 0}, resolver.Resolve(models.Moulton, at))
}
