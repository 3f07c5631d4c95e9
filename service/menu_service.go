package service

import (
	"context"
	"time"

	"menu-bot/api/dining"
	"menu-bot/models"
	"menu-bot/schedule"
	"menu-bot/util"

	"go.uber.org/zap"
)

// MenuService fetches, parses and formats one dining hall's menu.
type MenuService struct {
	diningAPI dining.DiningAPI
	resolver  *schedule.Resolver
	logger    *zap.Logger
}

// NewMenuService constructs a MenuService with its dependencies.
func NewMenuService(diningAPI dining.DiningAPI, resolver *schedule.Resolver, logger *zap.Logger) *MenuService {
	return &MenuService{
		diningAPI: diningAPI,
		resolver:  resolver,
		logger:    logger,
	}
}

// MenuText resolves the upcoming meal for the location, fetches that meal's
// menu and renders it. Returns an empty string on every no-data path; the
// error is non-nil only for fetch or parse failures, and callers degrade to
// an empty section rather than aborting.
func (s *MenuService) MenuText(ctx context.Context, location models.Location, now time.Time) (string, error) {
	resolved := s.resolver.Resolve(location, now)
	targetDate := now.AddDate(0, 0, resolved.DayOffset)

	payload, err := s.diningAPI.GetMenu(ctx, location, targetDate, resolved.Meal)
	if err != nil {
		return "", err
	}

	menu, err := dining.ParseMenuResponse(payload)
	if err != nil {
		return "", err
	}
	if menu == nil {
		s.logger.Info("no menu records for location",
			zap.String("location", location.Name()),
			zap.String("meal", string(resolved.Meal)),
		)
		return "", nil
	}

	return util.Stringify(location, resolved.Meal, menu, now), nil
}
