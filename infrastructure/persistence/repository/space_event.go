package repository

import (
	"context"
	"errors"
	"time"

	"github.com/modeemi/spacestatus/domain/model"
	domainrepo "github.com/modeemi/spacestatus/domain/repository"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type spaceEventRepository struct {
	database *gorm.DB
	logger   *logger.Logger
}

func NewSpaceEventRepository(database *gorm.DB, log *logger.Logger) domainrepo.SpaceEventRepository {
	return &spaceEventRepository{
		database: database,
		logger:   log,
	}
}

func (r *spaceEventRepository) Append(ctx context.Context, event *model.SpaceEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	err := r.database.WithContext(ctx).Create(event).Error
	if err != nil {
		// A foreign key violation means the space vanished between the
		// caller's existence check and the insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrRecordNotFound
		}
		r.logger.Error("failed to append event", zap.Error(err), zap.Int("spaceID", event.SpaceID))
		return err
	}
	return nil
}

// Latest returns the event with the maximum (timestamp, id) pair. The id
// tiebreak keeps the order total when two server timestamps collide.
func (r *spaceEventRepository) Latest(ctx context.Context, spaceID int) (*model.SpaceEvent, error) {
	var event model.SpaceEvent
	err := r.database.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("timestamp DESC, id DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to get latest event", zap.Error(err), zap.Int("spaceID", spaceID))
		return nil, err
	}
	return &event, nil
}

func (r *spaceEventRepository) LatestAnnounced(ctx context.Context, spaceID int) (*model.SpaceEvent, error) {
	var event model.SpaceEvent
	err := r.database.WithContext(ctx).
		Where("space_id = ? AND telegram_message_id IS NOT NULL", spaceID).
		Order("timestamp DESC, id DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to get latest announced event", zap.Error(err), zap.Int("spaceID", spaceID))
		return nil, err
	}
	return &event, nil
}

func (r *spaceEventRepository) List(ctx context.Context, spaceID, skip, limit int) ([]model.SpaceEvent, error) {
	events := make([]model.SpaceEvent, 0, limit)
	err := r.database.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		r.logger.Error("failed to list events", zap.Error(err), zap.Int("spaceID", spaceID))
		return nil, err
	}
	return events, nil
}

func (r *spaceEventRepository) AttachMessageID(ctx context.Context, eventID int, messageID int64) error {
	result := r.database.WithContext(ctx).
		Model(&model.SpaceEvent{}).
		Where("id = ?", eventID).
		Update("telegram_message_id", messageID)
	if result.Error != nil {
		r.logger.Error("failed to attach message id", zap.Error(result.Error), zap.Int("eventID", eventID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *spaceEventRepository) ClearMessageID(ctx context.Context, eventID int) error {
	err := r.database.WithContext(ctx).
		Model(&model.SpaceEvent{}).
		Where("id = ?", eventID).
		Update("telegram_message_id", nil).Error
	if err != nil {
		r.logger.Error("failed to clear message id", zap.Error(err), zap.Int("eventID", eventID))
	}
	return err
}
