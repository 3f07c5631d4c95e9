// Package state persists the single "closed message already sent" flag so
// the bot does not repeat the closed notification every cycle.
package state

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ClosedStateDAO persists the closed-message flag.
type ClosedStateDAO interface {
	// IsSet reports whether the closed message has already been sent.
	IsSet() (bool, error)
	// Set marks the closed message as sent.
	Set() error
	// Clear allows the closed message to be sent again in the future.
	Clear() error
}

// FileClosedStateDAO tracks the flag through the existence of a file.
type FileClosedStateDAO struct {
	path   string
	logger *zap.Logger
}

// NewFileClosedStateDAO constructs a file-backed closed-state DAO.
func NewFileClosedStateDAO(path string, logger *zap.Logger) *FileClosedStateDAO {
	return &FileClosedStateDAO{path: path, logger: logger}
}

// IsSet reports whether the flag file exists.
func (d *FileClosedStateDAO) IsSet() (bool, error) {
	_, err := os.Stat(d.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat closed-state file: %w", err)
}

// Set creates the flag file.
func (d *FileClosedStateDAO) Set() error {
	d.logger.Info("setting closed-state file to mark closed message as sent", zap.String("path", d.path))
	if err := os.WriteFile(d.path, []byte("CLOSED"), 0o644); err != nil {
		return fmt.Errorf("write closed-state file: %w", err)
	}
	return nil
}

// Clear removes the flag file if it exists.
func (d *FileClosedStateDAO) Clear() error {
	err := os.Remove(d.path)
	if err == nil {
		d.logger.Info("removed closed-state file to allow future closed messages", zap.String("path", d.path))
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("remove closed-state file: %w", err)
}
