package groupme

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"menu-bot/api"
	"menu-bot/config"
	"menu-bot/models"

	"go.uber.org/zap"
)

type listMessagesResponse struct {
	Response struct {
		Messages []models.GroupMessage `json:"messages"`
	} `json:"response"`
}

type botPostRequest struct {
	BotID string `json:"bot_id"`
	Text  string `json:"text"`
}

// GroupMeApiClient talks to the GroupMe v3 API.
type GroupMeApiClient struct {
	*api.HTTPClient
	cfg    config.GroupMeConfig
	logger *zap.Logger
}

// NewGroupMeApiClient creates a new instance of GroupMeApiClient.
func NewGroupMeApiClient(httpClient *api.HTTPClient, cfg config.GroupMeConfig, logger *zap.Logger) *GroupMeApiClient {
	return &GroupMeApiClient{
		HTTPClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

// PostBotMessage sends a message through the bot webhook. GroupMe
// acknowledges with 202 Accepted; any other status is logged but only
// transport and hard HTTP failures are errors.
func (c *GroupMeApiClient) PostBotMessage(ctx context.Context, text string) error {
	c.logger.Info("sending message to GroupMe bot", zap.Int("length", len(text)))

	_, status, err := c.PostJSON(ctx, "/bots/post", botPostRequest{
		BotID: c.cfg.BotID,
		Text:  text,
	})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("unexpected status code %d from GroupMe bot post", status)
	}
	if status != http.StatusAccepted {
		c.logger.Warn("GroupMe API responded with unexpected success status", zap.Int("status", status))
	}
	return nil
}

// ListMessages fetches the group's most recent messages, newest first.
func (c *GroupMeApiClient) ListMessages(ctx context.Context, limit int) ([]models.GroupMessage, error) {
	endpoint := fmt.Sprintf("/groups/%s/messages?token=%s&limit=%d",
		url.PathEscape(c.cfg.GroupID), url.QueryEscape(c.cfg.AccessToken), limit)

	var response listMessagesResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched group messages", zap.Int("count", len(response.Response.Messages)))
	return response.Response.Messages, nil
}
