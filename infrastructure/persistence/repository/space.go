package repository

import (
	"context"
	"errors"

	"github.com/modeemi/spacestatus/domain/model"
	domainrepo "github.com/modeemi/spacestatus/domain/repository"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateName  = errors.New("space name already exists")
)

type spaceRepository struct {
	database *gorm.DB
	logger   *logger.Logger
}

func NewSpaceRepository(database *gorm.DB, log *logger.Logger) domainrepo.SpaceRepository {
	return &spaceRepository{
		database: database,
		logger:   log,
	}
}

func (r *spaceRepository) Create(ctx context.Context, space *model.Space) error {
	err := r.database.WithContext(ctx).Create(space).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		r.logger.Error("failed to create space", zap.Error(err), zap.String("name", space.Name))
		return err
	}
	return nil
}

func (r *spaceRepository) GetByID(ctx context.Context, id int) (*model.Space, error) {
	var space model.Space
	err := r.database.WithContext(ctx).First(&space, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		r.logger.Error("failed to get space", zap.Error(err), zap.Int("spaceID", id))
		return nil, err
	}
	return &space, nil
}

func (r *spaceRepository) GetByName(ctx context.Context, name string) (*model.Space, error) {
	var space model.Space
	err := r.database.WithContext(ctx).Where("name = ?", name).First(&space).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		r.logger.Error("failed to get space by name", zap.Error(err), zap.String("name", name))
		return nil, err
	}
	return &space, nil
}

func (r *spaceRepository) Update(ctx context.Context, space *model.Space) error {
	err := r.database.WithContext(ctx).Save(space).Error
	if err != nil {
		r.logger.Error("failed to update space", zap.Error(err), zap.Int("spaceID", space.ID))
		return err
	}
	return nil
}

// Delete removes a space and all of its events. The cascade is explicit so a
// space can never leave orphaned events behind.
func (r *spaceRepository) Delete(ctx context.Context, id int) error {
	return r.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var space model.Space
		if err := tx.First(&space, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		if err := tx.Where("space_id = ?", id).Delete(&model.SpaceEvent{}).Error; err != nil {
			r.logger.Error("failed to delete space events", zap.Error(err), zap.Int("spaceID", id))
			return err
		}

		if err := tx.Delete(&model.Space{}, id).Error; err != nil {
			r.logger.Error("failed to delete space", zap.Error(err), zap.Int("spaceID", id))
			return err
		}

		return nil
	})
}

func (r *spaceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.database.WithContext(ctx).Model(&model.Space{}).Count(&count).Error
	return count, err
}
