package groupme

import (
	"context"
	"time"

	"menu-bot/models"

	"go.uber.org/zap"
)

// LikeCallback is invoked when the watched message gains likes.
type LikeCallback func(message models.GroupMessage, newCount, oldCount int)

// WatchMessageLikes polls the group feed on a ticker and invokes the
// callback whenever the watched message's like count grows. Returns when the
// context is canceled.
func WatchMessageLikes(ctx context.Context, groupmeAPI GroupMeAPI, messageID string, interval time.Duration, logger *zap.Logger, callback LikeCallback) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastLikeCount := 0
	for {
		checkMessageLikes(ctx, groupmeAPI, messageID, logger, callback, &lastLikeCount)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func checkMessageLikes(ctx context.Context, groupmeAPI GroupMeAPI, messageID string, logger *zap.Logger, callback LikeCallback, lastLikeCount *int) {
	messages, err := groupmeAPI.ListMessages(ctx, 20)
	if err != nil {
		logger.Error("error fetching messages while watching likes", zap.Error(err))
		return
	}

	for _, message := range messages {
		if message.ID != messageID {
			continue
		}
		current := message.LikeCount()
		if current > *lastLikeCount {
			callback(message, current, *lastLikeCount)
			*lastLikeCount = current
		}
		return
	}
	logger.Warn("watched message not found in latest fetch", zap.String("message_id", messageID))
}
