package status

import (
	"context"
	"errors"
	"time"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/domain/repository"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/modeemi/spacestatus/infrastructure/metrics"
	"github.com/modeemi/spacestatus/infrastructure/notify"
	persistence "github.com/modeemi/spacestatus/infrastructure/persistence/repository"
	"github.com/modeemi/spacestatus/infrastructure/security"
	"go.uber.org/zap"
)

var (
	// ErrForbidden covers bad credentials, a username/space-name mismatch, and
	// a nonexistent space. Mutation callers deliberately cannot tell these
	// apart.
	ErrForbidden = errors.New("forbidden")

	ErrNoEvents     = errors.New("no events found for this space")
	ErrInvalidState = errors.New("invalid event state")
)

type Credentials struct {
	Username string
	Password string
}

type StatusUseCase interface {
	// Open appends an open event and fires the announcement side channel.
	Open(ctx context.Context, spaceID int, creds Credentials) (*model.SpaceEvent, error)
	// Close appends a closed event and fires the announcement side channel.
	Close(ctx context.Context, spaceID int, creds Credentials) (*model.SpaceEvent, error)
	// CreateEvent appends an event of any state without announcing it.
	CreateEvent(ctx context.Context, spaceID int, state model.SpaceEventState, creds Credentials) (*model.SpaceEvent, error)
	Latest(ctx context.Context, spaceID int) (*model.SpaceEvent, error)
	List(ctx context.Context, spaceID, skip, limit int) ([]model.SpaceEvent, error)
}

type statusUseCase struct {
	spaces     repository.SpaceRepository
	events     repository.SpaceEventRepository
	dispatcher *notify.Dispatcher
	logger     *logger.Logger
}

func NewStatusUseCase(
	spaces repository.SpaceRepository,
	events repository.SpaceEventRepository,
	dispatcher *notify.Dispatcher,
	log *logger.Logger,
) StatusUseCase {
	return &statusUseCase{
		spaces:     spaces,
		events:     events,
		dispatcher: dispatcher,
		logger:     log,
	}
}

func (uc *statusUseCase) Open(ctx context.Context, spaceID int, creds Credentials) (*model.SpaceEvent, error) {
	return uc.transition(ctx, spaceID, model.StateOpen, creds, true)
}

func (uc *statusUseCase) Close(ctx context.Context, spaceID int, creds Credentials) (*model.SpaceEvent, error) {
	return uc.transition(ctx, spaceID, model.StateClosed, creds, true)
}

func (uc *statusUseCase) CreateEvent(ctx context.Context, spaceID int, state model.SpaceEventState, creds Credentials) (*model.SpaceEvent, error) {
	if !state.Valid() {
		return nil, ErrInvalidState
	}
	return uc.transition(ctx, spaceID, state, creds, false)
}

func (uc *statusUseCase) transition(ctx context.Context, spaceID int, state model.SpaceEventState, creds Credentials, announce bool) (*model.SpaceEvent, error) {
	space, err := uc.authenticate(ctx, spaceID, creds)
	if err != nil {
		return nil, err
	}

	event := &model.SpaceEvent{
		SpaceID:   space.ID,
		Timestamp: time.Now().UTC(),
		State:     state,
	}
	if err := uc.events.Append(ctx, event); err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			// Space deleted between the auth lookup and the insert.
			return nil, ErrForbidden
		}
		uc.logger.Error("failed to append event",
			zap.Error(err),
			zap.Int("spaceID", spaceID),
			zap.String("state", string(state)),
		)
		return nil, err
	}

	metrics.CountEventAppended(string(state))

	if announce && uc.dispatcher != nil {
		// Fire and forget: the HTTP response does not wait for Telegram.
		go uc.dispatcher.Dispatch(*space, *event)
	}

	return event, nil
}

// authenticate resolves the space and checks the presented credentials. A
// missing space reports ErrForbidden, same as a bad password, so mutation
// endpoints answer 403 either way.
func (uc *statusUseCase) authenticate(ctx context.Context, spaceID int, creds Credentials) (*model.Space, error) {
	space, err := uc.spaces.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	if !security.VerifyPassword(space.PasswordHash, creds.Password) {
		return nil, ErrForbidden
	}
	if creds.Username != space.Name {
		return nil, ErrForbidden
	}

	return space, nil
}

func (uc *statusUseCase) Latest(ctx context.Context, spaceID int) (*model.SpaceEvent, error) {
	event, err := uc.events.Latest(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNoEvents
	}
	return event, nil
}

func (uc *statusUseCase) List(ctx context.Context, spaceID, skip, limit int) ([]model.SpaceEvent, error) {
	return uc.events.List(ctx, spaceID, skip, limit)
}
