package dining

import (
	"context"
	"net/url"
	"time"

	"menu-bot/api"
	"menu-bot/models"

	"go.uber.org/zap"
)

// The menu API expects dates as compact YYYYMMDD strings.
const menuDateLayout = "20060102"

// DiningApiClient talks to the campus dining menu API.
type DiningApiClient struct {
	*api.HTTPClient
	logger *zap.Logger
}

// NewDiningApiClient creates a new instance of DiningApiClient.
func NewDiningApiClient(httpClient *api.HTTPClient, logger *zap.Logger) *DiningApiClient {
	return &DiningApiClient{
		HTTPClient: httpClient,
		logger:     logger,
	}
}

// GetMenu POSTs the unit/date/meal form to the menu API and returns the raw
// XML payload.
func (c *DiningApiClient) GetMenu(ctx context.Context, location models.Location, date time.Time, meal models.MealPeriod) ([]byte, error) {
	form := url.Values{}
	form.Set("unit", location.UnitParam())
	form.Set("date", date.Format(menuDateLayout))
	form.Set("meal", string(meal))

	c.logger.Info("requesting menu",
		zap.String("location", location.Name()),
		zap.String("date", date.Format(menuDateLayout)),
		zap.String("meal", string(meal)),
	)
	return c.PostForm(ctx, "", form)
}
