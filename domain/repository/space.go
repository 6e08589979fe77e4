package repository

import (
	"context"

	"github.com/modeemi/spacestatus/domain/model"
)

type SpaceRepository interface {
	Create(ctx context.Context, space *model.Space) error
	GetByID(ctx context.Context, id int) (*model.Space, error)
	GetByName(ctx context.Context, name string) (*model.Space, error)
	Update(ctx context.Context, space *model.Space) error
	// Delete removes the space together with its events in one transaction.
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
