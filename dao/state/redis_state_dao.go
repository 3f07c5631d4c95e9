package state

import (
	"menu-bot/db"

	"go.uber.org/zap"
)

const closedStateKey = "menu-bot:closed_state"

// RedisClosedStateDAO keeps the flag in Redis, for deployments without a
// stable working directory. It stores the same single boolean the file
// variant does.
type RedisClosedStateDAO struct {
	client db.RedisClient
	logger *zap.Logger
}

// NewRedisClosedStateDAO constructs a Redis-backed closed-state DAO.
func NewRedisClosedStateDAO(client db.RedisClient, logger *zap.Logger) *RedisClosedStateDAO {
	return &RedisClosedStateDAO{client: client, logger: logger}
}

// IsSet reports whether the closed-state key exists.
func (d *RedisClosedStateDAO) IsSet() (bool, error) {
	return d.client.Exists(closedStateKey)
}

// Set marks the closed message as sent.
func (d *RedisClosedStateDAO) Set() error {
	d.logger.Info("setting closed-state key to mark closed message as sent")
	return d.client.Set(closedStateKey, "CLOSED")
}

// Clear allows the closed message to be sent again in the future.
func (d *RedisClosedStateDAO) Clear() error {
	return d.client.Del(closedStateKey)
}
