package groupme

import (
	"context"
	"sync"

	"menu-bot/models"
)

// GroupMeApiClientMock records posted messages and serves canned group
// messages.
type GroupMeApiClientMock struct {
	mu       sync.Mutex
	Posted   []string
	Messages []models.GroupMessage
	PostErr  error
	ListErr  error
}

// NewGroupMeApiClientMock creates a new instance of GroupMeApiClientMock.
func NewGroupMeApiClientMock() *GroupMeApiClientMock {
	return &GroupMeApiClientMock{}
}

func (c *GroupMeApiClientMock) PostBotMessage(ctx context.Context, text string) error {
	if c.PostErr != nil {
		return c.PostErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Posted = append(c.Posted, text)
	return nil
}

func (c *GroupMeApiClientMock) ListMessages(ctx context.Context, limit int) ([]models.GroupMessage, error) {
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit > len(c.Messages) {
		limit = len(c.Messages)
	}
	return c.Messages[:limit], nil
}

// PostedMessages returns a copy of everything posted so far.
func (c *GroupMeApiClientMock) PostedMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.Posted))
	copy(out, c.Posted)
	return out
}
