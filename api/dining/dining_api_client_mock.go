package dining

import (
	"context"
	"time"

	"menu-bot/models"
)

const sampleMenuXML = `<response>
  <record><course>Main Course</course><webLongName>Roast Chicken</webLongName></record>
  <record><course>Main Course</course><webLongName>Pasta  Primavera</webLongName></record>
  <record><course>Vegetables</course><webLongName>Steamed Broccoli</webLongName></record>
  <record><course>Desserts</course><webLongName>Apple Crisp</webLongName></record>
</response>`

// DiningApiClientMock returns a canned menu payload without touching the
// network.
type DiningApiClientMock struct {
	// Payload overrides the canned XML when set.
	Payload []byte
	// PayloadFor overrides the payload for specific units (keyed by the
	// location's unit parameter), taking precedence over Payload.
	PayloadFor map[string][]byte
	// Err, when set, is returned instead of any payload.
	Err error
}

// NewDiningApiClientMock creates a new instance of DiningApiClientMock.
func NewDiningApiClientMock() *DiningApiClientMock {
	return &DiningApiClientMock{}
}

// GetMenu returns the canned XML payload.
func (c *DiningApiClientMock) GetMenu(ctx context.Context, location models.Location, date time.Time, meal models.MealPeriod) ([]byte, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if payload, ok := c.PayloadFor[location.UnitParam()]; ok {
		return payload, nil
	}
	if c.Payload != nil {
		return c.Payload, nil
	}
	return []byte(sampleMenuXML), nil
}
