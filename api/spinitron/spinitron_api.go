package spinitron

import (
	"context"

	"menu-bot/models"
)

// SpinitronAPI defines the interface for the station's Spinitron proxy.
// Every call returns (nil, nil) style "no data" rather than an error when the
// upstream payload is present but unusable.
type SpinitronAPI interface {
	// GetCurrentSpin returns the most recent spin, or nil when nothing
	// usable is playing.
	GetCurrentSpin(ctx context.Context) (*models.Spin, error)
	// GetCurrentPlaylist returns the playlist currently on air, or nil.
	GetCurrentPlaylist(ctx context.Context) (*models.Playlist, error)
	// GetPersonaName resolves a persona ID to a display name; empty when
	// unknown.
	GetPersonaName(ctx context.Context, personaID int) (string, error)
}
