package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"menu-bot/api/groupme"
	"menu-bot/config"
	"menu-bot/di"
	"menu-bot/logger"
	"menu-bot/models"
	"menu-bot/util"

	"go.uber.org/zap"
)

const likePollInterval = 3 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.NewZapLogger(cfg)
	defer log.Sync()

	container := di.NewContainer(cfg.Env, cfg, log)
	ctx := context.Background()

	command := ""
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "":
		// Cron-style: run the pipeline once and exit.
		if err := container.NotifierService.Run(ctx); err != nil {
			log.Error("notification run failed", zap.Error(err))
		}
	case "serve":
		runServe(ctx, cfg, container, log)
	case "messages":
		runMessages(ctx, cfg, container, log)
	case "watch-likes":
		runWatchLikes(ctx, cfg, container, log)
	case "plot-schedule":
		runPlotSchedule(log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		fmt.Fprintln(os.Stderr, "usage: menu-bot [serve|messages|watch-likes <message-id>|plot-schedule [file]]")
		os.Exit(1)
	}
}

func runServe(ctx context.Context, cfg *config.Config, container *di.Container, log *zap.Logger) {
	if err := container.NotifierService.Run(ctx); err != nil {
		log.Error("initial notification run failed", zap.Error(err))
	}

	interval := time.Duration(cfg.Notify.IntervalMinutes) * time.Minute
	log.Info("starting periodic notification job", zap.Duration("interval", interval))
	container.NotifierService.StartPeriodicJob(ctx, interval)

	// Blocks until SIGINT/SIGTERM.
	container.StatusServer.Start()
}

func runMessages(ctx context.Context, cfg *config.Config, container *di.Container, log *zap.Logger) {
	if err := cfg.RequireGroupAccess(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	messages, err := container.GroupMeAPI.ListMessages(ctx, 20)
	if err != nil {
		log.Error("error fetching messages", zap.Error(err))
		return
	}
	if len(messages) == 0 {
		log.Info("no messages returned from API")
		return
	}

	// Log in chronological order, oldest first.
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		log.Info("group message",
			zap.String("id", msg.ID),
			zap.String("sender", msg.Name),
			zap.Time("created", time.Unix(msg.CreatedAt, 0)),
			zap.String("text", msg.Text),
		)
	}
}

func runWatchLikes(ctx context.Context, cfg *config.Config, container *di.Container, log *zap.Logger) {
	if err := cfg.RequireGroupAccess(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: menu-bot watch-likes <message-id>")
		os.Exit(1)
	}
	messageID := os.Args[2]

	log.Info("watching message for likes", zap.String("message_id", messageID))
	groupme.WatchMessageLikes(ctx, container.GroupMeAPI, messageID, likePollInterval, log,
		func(message models.GroupMessage, newCount, oldCount int) {
			log.Info("message has new likes",
				zap.String("message_id", message.ID),
				zap.Int("likes", newCount),
				zap.Int("previous", oldCount),
			)
		})
}

func runPlotSchedule(log *zap.Logger) {
	outputPath := "meal_schedule.html"
	if len(os.Args) > 2 {
		outputPath = os.Args[2]
	}
	if err := util.PlotSchedule(outputPath); err != nil {
		log.Error("failed to plot schedule", zap.Error(err))
		os.Exit(1)
	}
}
