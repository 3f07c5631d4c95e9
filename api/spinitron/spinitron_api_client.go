package spinitron

import (
	"context"
	"fmt"
	"time"

	"menu-bot/api"
	"menu-bot/models"

	"go.uber.org/zap"
)

// The proxy emits start times with a zone offset but not always a colon in
// it, so both layouts are tried.
var spinStartLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

type spinsResponse struct {
	Items []spinItem `json:"items"`
}

type spinItem struct {
	Song     string `json:"song"`
	Artist   string `json:"artist"`
	Duration int    `json:"duration"`
	Start    string `json:"start"`
}

type playlistsResponse struct {
	Items []playlistItem `json:"items"`
}

type playlistItem struct {
	Title      string `json:"title"`
	PersonaID  int    `json:"persona_id"`
	Automation *bool  `json:"automation"`
}

type personaResponse struct {
	Name string `json:"name"`
}

// SpinitronApiClient talks to the Spinitron API proxy.
type SpinitronApiClient struct {
	*api.HTTPClient
	logger *zap.Logger
	now    func() time.Time
}

// NewSpinitronApiClient creates a new instance of SpinitronApiClient.
func NewSpinitronApiClient(httpClient *api.HTTPClient, logger *zap.Logger) *SpinitronApiClient {
	return &SpinitronApiClient{
		HTTPClient: httpClient,
		logger:     logger,
		now:        time.Now,
	}
}

// GetCurrentSpin fetches the most recent spin and computes how long ago it
// started.
func (c *SpinitronApiClient) GetCurrentSpin(ctx context.Context) (*models.Spin, error) {
	var response spinsResponse
	if err := c.GetJSON(ctx, "/spins", &response); err != nil {
		return nil, err
	}
	if len(response.Items) == 0 {
		c.logger.Info("no spins found in response")
		return nil, nil
	}

	current := response.Items[0]
	if current.Song == "" || current.Artist == "" {
		c.logger.Warn("data missing from Spinitron spin response")
		return nil, nil
	}

	start, err := parseSpinStart(current.Start)
	if err != nil {
		c.logger.Error("error parsing spin start time",
			zap.String("start", current.Start),
			zap.Error(err),
		)
		return nil, nil
	}
	elapsed := int(c.now().UTC().Sub(start).Seconds())

	c.logger.Debug("current spin",
		zap.String("song", current.Song),
		zap.String("artist", current.Artist),
		zap.Int("duration", current.Duration),
		zap.Int("elapsed", elapsed),
	)
	return &models.Spin{
		Song:     current.Song,
		Artist:   current.Artist,
		Duration: current.Duration,
		Elapsed:  elapsed,
	}, nil
}

// GetCurrentPlaylist fetches the playlist currently on air.
func (c *SpinitronApiClient) GetCurrentPlaylist(ctx context.Context) (*models.Playlist, error) {
	var response playlistsResponse
	if err := c.GetJSON(ctx, "/playlists", &response); err != nil {
		return nil, err
	}
	if len(response.Items) == 0 {
		c.logger.Info("no playlists found in response")
		return nil, nil
	}

	current := response.Items[0]
	if current.Title == "" || current.Automation == nil {
		c.logger.Warn("data missing from Spinitron playlist response",
			zap.String("title", current.Title),
			zap.Int("persona_id", current.PersonaID),
		)
		return nil, nil
	}

	return &models.Playlist{
		Title:      current.Title,
		PersonaID:  current.PersonaID,
		Automation: *current.Automation,
	}, nil
}

// GetPersonaName resolves a persona ID to its display name.
func (c *SpinitronApiClient) GetPersonaName(ctx context.Context, personaID int) (string, error) {
	if personaID <= 0 {
		c.logger.Warn("invalid persona ID", zap.Int("persona_id", personaID))
		return "", nil
	}

	var response personaResponse
	if err := c.GetJSON(ctx, fmt.Sprintf("/personas/%d", personaID), &response); err != nil {
		return "", err
	}
	if response.Name == "" {
		c.logger.Warn("data missing from Spinitron persona response")
		return "", nil
	}
	return response.Name, nil
}

func parseSpinStart(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range spinStartLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
