package space

import (
	"context"
	"errors"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/domain/repository"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	persistence "github.com/modeemi/spacestatus/infrastructure/persistence/repository"
	"go.uber.org/zap"
)

var ErrSpaceNotFound = errors.New("space not found")

type SpaceUseCase interface {
	GetByID(ctx context.Context, id int) (*model.Space, error)
	GetByName(ctx context.Context, name string) (*model.Space, error)
	// SpaceAPI computes the public SpaceAPI v15 projection for the named
	// space from its latest event. Nothing is stored for the projection.
	SpaceAPI(ctx context.Context, name string) (*SpaceAPIResponse, error)
}

type spaceUseCase struct {
	spaces repository.SpaceRepository
	events repository.SpaceEventRepository
	logger *logger.Logger
}

func NewSpaceUseCase(
	spaces repository.SpaceRepository,
	events repository.SpaceEventRepository,
	log *logger.Logger,
) SpaceUseCase {
	return &spaceUseCase{
		spaces: spaces,
		events: events,
		logger: log,
	}
}

func (uc *spaceUseCase) GetByID(ctx context.Context, id int) (*model.Space, error) {
	space, err := uc.spaces.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return space, nil
}

func (uc *spaceUseCase) GetByName(ctx context.Context, name string) (*model.Space, error) {
	space, err := uc.spaces.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return space, nil
}

func (uc *spaceUseCase) SpaceAPI(ctx context.Context, name string) (*SpaceAPIResponse, error) {
	space, err := uc.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	latest, err := uc.events.Latest(ctx, space.ID)
	if err != nil {
		uc.logger.Error("failed to resolve latest event for projection",
			zap.Error(err),
			zap.Int("spaceID", space.ID),
		)
		return nil, err
	}

	return BuildProjection(*space, latest), nil
}
