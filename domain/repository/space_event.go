package repository

import (
	"context"

	"github.com/modeemi/spacestatus/domain/model"
)

type SpaceEventRepository interface {
	Append(ctx context.Context, event *model.SpaceEvent) error
	// Latest returns the event with the highest (timestamp, id) pair for the
	// space, or nil when no events exist.
	Latest(ctx context.Context, spaceID int) (*model.SpaceEvent, error)
	// LatestAnnounced returns the most recent event still carrying a Telegram
	// message id, or nil.
	LatestAnnounced(ctx context.Context, spaceID int) (*model.SpaceEvent, error)
	// List returns events in insertion order.
	List(ctx context.Context, spaceID, skip, limit int) ([]model.SpaceEvent, error)
	AttachMessageID(ctx context.Context, eventID int, messageID int64) error
	ClearMessageID(ctx context.Context, eventID int) error
}
