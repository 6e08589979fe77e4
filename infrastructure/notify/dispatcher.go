package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/domain/repository"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/modeemi/spacestatus/infrastructure/metrics"
	"go.uber.org/zap"
)

// Dispatcher announces open/close transitions to a space's Telegram channel.
// The caller runs Dispatch in its own goroutine; every failure here is logged
// and swallowed, and the event-log append it follows is never rolled back.
type Dispatcher struct {
	announcer Announcer
	events    repository.SpaceEventRepository
	logger    *logger.Logger
	timeout   time.Duration
}

func NewDispatcher(
	announcer Announcer,
	events repository.SpaceEventRepository,
	log *logger.Logger,
	timeout time.Duration,
) *Dispatcher {
	return &Dispatcher{
		announcer: announcer,
		events:    events,
		logger:    log,
		timeout:   timeout,
	}
}

// Dispatch deletes the previous announcement for the space if one is
// recorded, sends a new one for the event, and attaches the returned message
// id to the event. No-ops when the space's Telegram config is incomplete.
func (d *Dispatcher) Dispatch(space model.Space, event model.SpaceEvent) {
	if !space.TelegramConfigured() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	target := TelegramTarget{
		ChatID:   space.TelegramChatID,
		BotToken: space.TelegramBotToken,
	}

	d.deletePrevious(ctx, target, space.ID, event.ID)

	messageID, err := d.announcer.Send(ctx, target, announcementText(space, event))
	if err != nil {
		d.logger.Warn("failed to send announcement",
			zap.Error(err),
			zap.Int("spaceID", space.ID),
			zap.Int("eventID", event.ID),
		)
		return
	}

	metrics.CountAnnouncementSent()

	if err := d.events.AttachMessageID(ctx, event.ID, messageID); err != nil {
		d.logger.Warn("failed to record announcement message id",
			zap.Error(err),
			zap.Int("eventID", event.ID),
			zap.Int64("messageID", messageID),
		)
	}
}

func (d *Dispatcher) deletePrevious(ctx context.Context, target TelegramTarget, spaceID, currentEventID int) {
	previous, err := d.events.LatestAnnounced(ctx, spaceID)
	if err != nil || previous == nil || previous.ID == currentEventID {
		return
	}
	if !previous.TelegramMessageID.Valid {
		return
	}

	if err := d.announcer.Delete(ctx, target, previous.TelegramMessageID.Int64); err != nil {
		d.logger.Warn("failed to delete stale announcement",
			zap.Error(err),
			zap.Int("spaceID", spaceID),
			zap.Int64("messageID", previous.TelegramMessageID.Int64),
		)
		return
	}

	if err := d.events.ClearMessageID(ctx, previous.ID); err != nil {
		d.logger.Warn("failed to clear stale message id",
			zap.Error(err),
			zap.Int("eventID", previous.ID),
		)
	}
}

func announcementText(space model.Space, event model.SpaceEvent) string {
	switch event.State {
	case model.StateOpen:
		return fmt.Sprintf("%s is now open", space.Name)
	case model.StateClosed:
		return fmt.Sprintf("%s is now closed", space.Name)
	default:
		return fmt.Sprintf("%s state is %s", space.Name, event.State)
	}
}
