package service

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"menu-bot/api/groupme"
	"menu-bot/api/spinitron"
	"menu-bot/dao/state"
	"menu-bot/models"
	"menu-bot/util"

	"go.uber.org/zap"
)

const (
	// GroupMe rejects bot messages of 1000 characters or more; anything
	// that long is never submitted and is surfaced as an alert instead.
	maxMessageChars = 1000

	// Spins older than this are treated as no longer playing.
	maxSpinElapsedSeconds = 900

	closedMessage = "The campus dining halls seem to be closed."
)

// NotifierService runs the whole pipeline: menus for both dining halls,
// closed-state handling, the now-playing trailer and the GroupMe posts.
type NotifierService struct {
	menuService  *MenuService
	spinitronAPI spinitron.SpinitronAPI
	groupmeAPI   groupme.GroupMeAPI
	closedState  state.ClosedStateDAO
	logger       *zap.Logger

	mu          sync.Mutex
	lastRun     time.Time
	lastOutcome string
}

// NewNotifierService constructs a NotifierService with its dependencies.
func NewNotifierService(
	menuService *MenuService,
	spinitronAPI spinitron.SpinitronAPI,
	groupmeAPI groupme.GroupMeAPI,
	closedState state.ClosedStateDAO,
	logger *zap.Logger,
) *NotifierService {
	return &NotifierService{
		menuService:  menuService,
		spinitronAPI: spinitronAPI,
		groupmeAPI:   groupmeAPI,
		closedState:  closedState,
		logger:       logger,
	}
}

// Run executes the pipeline once. External failures degrade the output (a
// hall's section or the song trailer is skipped); Run itself only errors on
// closed-state store failures.
func (n *NotifierService) Run(ctx context.Context) error {
	now := time.Now()
	n.logger.Info("starting menu notification run")

	texts := make(map[models.Location]string, len(models.AllLocations))
	for _, location := range models.AllLocations {
		text, err := n.menuService.MenuText(ctx, location, now)
		if err != nil {
			n.logger.Error("failed to retrieve menu, skipping section",
				zap.String("location", location.Name()),
				zap.Error(err),
			)
			text = ""
		}
		texts[location] = text
	}

	thorneText := texts[models.Thorne]
	moultonText := texts[models.Moulton]

	if thorneText == "" && moultonText == "" {
		outcome, err := n.handleClosed(ctx)
		n.recordRun(now, outcome)
		return err
	}

	n.logger.Info("at least one dining hall has data, clearing closed state")
	if err := n.closedState.Clear(); err != nil {
		n.recordRun(now, "error")
		return err
	}

	if songInfo := n.songInfo(ctx); songInfo != "" {
		// With both halls present the trailer rides on Moulton's message
		// so it is only sent once.
		if moultonText != "" {
			moultonText += songInfo
		} else {
			thorneText += songInfo
		}
	}

	n.postMenuText(ctx, thorneText, models.Thorne)
	n.postMenuText(ctx, moultonText, models.Moulton)
	n.recordRun(now, "sent")
	return nil
}

// StartPeriodicJob re-runs the pipeline on a ticker until the context is
// canceled. Used by serve mode.
func (n *NotifierService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go n.runPeriodicJob(ctx, interval)
}

func (n *NotifierService) runPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := n.Run(ctx); err != nil {
				n.logger.Error("periodic notification run failed", zap.Error(err))
			}
		}
	}
}

// LastRun reports when the pipeline last completed and how.
func (n *NotifierService) LastRun() (time.Time, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastRun, n.lastOutcome
}

func (n *NotifierService) recordRun(at time.Time, outcome string) {
	n.mu.Lock()
	n.lastRun = at
	n.lastOutcome = outcome
	n.mu.Unlock()
}

func (n *NotifierService) handleClosed(ctx context.Context) (string, error) {
	alreadySent, err := n.closedState.IsSet()
	if err != nil {
		return "error", err
	}
	if alreadySent {
		n.logger.Info("both dining halls still appear closed, closed message already sent")
		return "closed", nil
	}

	n.logger.Info("both dining halls appear closed, sending closed message")
	if err := n.groupmeAPI.PostBotMessage(ctx, closedMessage); err != nil {
		n.logger.Error("failed to send closed message", zap.Error(err))
		return "error", nil
	}
	return "closed", n.closedState.Set()
}

// songInfo assembles the now-playing trailer. Any failure or "no data"
// answer from the proxy degrades to an empty trailer.
func (n *NotifierService) songInfo(ctx context.Context) string {
	spin, err := n.spinitronAPI.GetCurrentSpin(ctx)
	if err != nil {
		n.logger.Error("error retrieving current spin", zap.Error(err))
		return ""
	}

	playlist, err := n.spinitronAPI.GetCurrentPlaylist(ctx)
	if err != nil {
		n.logger.Error("error retrieving current playlist", zap.Error(err))
		playlist = nil
	}

	if playlist != nil && playlist.Automation {
		n.logger.Debug("automation playlist detected, skipping song info")
		return ""
	}
	if spin == nil || spin.Elapsed > maxSpinElapsedSeconds {
		n.logger.Debug("no current spin within the elapsed cutoff, skipping song info")
		return ""
	}

	artist := util.CleanMetadataField(util.FieldArtist, spin.Artist)
	song := util.CleanMetadataField(util.FieldTrack, spin.Song)

	showTitle := ""
	personaName := ""
	if playlist != nil {
		showTitle = playlist.Title
		if playlist.PersonaID != 0 {
			personaName, err = n.spinitronAPI.GetPersonaName(ctx, playlist.PersonaID)
			if err != nil {
				n.logger.Error("error retrieving persona name", zap.Error(err))
				personaName = ""
			}
		}
	}

	return util.SongInfoBlock(artist, song, showTitle, personaName)
}

func (n *NotifierService) postMenuText(ctx context.Context, text string, location models.Location) {
	if text == "" {
		return
	}
	if utf8.RuneCountInString(text) >= maxMessageChars {
		n.logger.Error("menu text is too long to send",
			zap.String("location", location.Name()),
			zap.Int("chars", utf8.RuneCountInString(text)),
			zap.Bool("alert", true),
		)
		// Stdout so a cron wrapper surfaces the alert by mail.
		fmt.Printf("%s text is too long to send (>%d chars).\n", location.Name(), maxMessageChars-1)
		return
	}
	if err := n.groupmeAPI.PostBotMessage(ctx, text); err != nil {
		n.logger.Error("failed to send GroupMe message",
			zap.String("location", location.Name()),
			zap.Error(err),
		)
	}
}
