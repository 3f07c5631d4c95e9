package spinitron

import (
	"context"

	"menu-bot/models"
)

// SpinitronApiClientMock serves canned now-playing data.
type SpinitronApiClientMock struct {
	Spin     *models.Spin
	Playlist *models.Playlist
	Personas map[int]string
	Err      error
}

// NewSpinitronApiClientMock creates a mock with a live-sounding default spin.
func NewSpinitronApiClientMock() *SpinitronApiClientMock {
	return &SpinitronApiClientMock{
		Spin: &models.Spin{
			Song:     "Pink Moon",
			Artist:   "Nick Drake",
			Duration: 125,
			Elapsed:  40,
		},
		Playlist: &models.Playlist{
			Title:     "Morning Static",
			PersonaID: 7,
		},
		Personas: map[int]string{7: "DJ Example"},
	}
}

func (c *SpinitronApiClientMock) GetCurrentSpin(ctx context.Context) (*models.Spin, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Spin, nil
}

func (c *SpinitronApiClientMock) GetCurrentPlaylist(ctx context.Context) (*models.Playlist, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Playlist, nil
}

func (c *SpinitronApiClientMock) GetPersonaName(ctx context.Context, personaID int) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.Personas[personaID], nil
}
