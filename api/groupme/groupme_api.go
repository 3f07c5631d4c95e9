package groupme

import (
	"context"

	"menu-bot/models"
)

// GroupMeAPI defines the interface for the GroupMe bot webhook and the
// group message feed.
type GroupMeAPI interface {
	// PostBotMessage sends a message through the bot webhook.
	PostBotMessage(ctx context.Context, text string) error
	// ListMessages fetches the group's most recent messages, newest first.
	ListMessages(ctx context.Context, limit int) ([]models.GroupMessage, error)
}
