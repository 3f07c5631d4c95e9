package util

import (
	"fmt"
	"os"

	"menu-bot/models"
	"menu-bot/schedule"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotSchedule renders the published meal schedule to an HTML file: one bar
// per hour of the day, one series per (location, day type), labeled with the
// meal that hour resolves to. Gives the rule tables a visual audit surface.
func PlotSchedule(outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Meal Schedule",
			Width:     "1100px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Upcoming meal by hour of day",
			Subtitle: "Late-night hours roll into the next day's first meal",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	hours := make([]string, 24)
	for h := 0; h < 24; h++ {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}
	bar.SetXAxis(hours)

	for _, location := range models.AllLocations {
		for _, dayType := range schedule.DayTypes {
			series := make([]opts.BarData, 24)
			for h := 0; h < 24; h++ {
				series[h] = hourBar(location, dayType, h)
			}
			name := fmt.Sprintf("%s (%s)", location.Name(), dayType)
			bar.AddSeries(name, series)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create schedule plot file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("render schedule plot: %w", err)
	}
	fmt.Println("Meal schedule plot generated:", outputPath)
	return nil
}

// hourBar encodes one hour as a bar whose height is the meal's slot in the
// day (1=breakfast .. 4=dinner) and whose name carries meal and rollover.
func hourBar(location models.Location, dayType schedule.DayType, hour int) opts.BarData {
	for _, rule := range schedule.RulesFor(location, dayType) {
		if !rule.Window.Contains(hour) {
			continue
		}
		label := string(rule.Meal)
		if rule.DayOffset > 0 {
			label += " (next day)"
		}
		if rule.SpecialDay != nil {
			label += fmt.Sprintf(" / %s on %s", rule.SpecialMeal, rule.SpecialDay.String())
		}
		return opts.BarData{Name: label, Value: mealSlot(rule.Meal)}
	}
	return opts.BarData{Name: "unscheduled", Value: 0}
}

func mealSlot(meal models.MealPeriod) int {
	switch meal {
	case models.Breakfast:
		return 1
	case models.Brunch:
		return 2
	case models.Lunch:
		return 3
	case models.Dinner:
		return 4
	default:
		return 0
	}
}
