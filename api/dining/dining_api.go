package dining

import (
	"context"
	"time"

	"menu-bot/models"
)

// DiningAPI defines the interface for interacting with the dining menu API.
type DiningAPI interface {
	// GetMenu fetches the raw XML menu for a dining hall, target date and
	// meal period.
	GetMenu(ctx context.Context, location models.Location, date time.Time, meal models.MealPeriod) ([]byte, error)
}
