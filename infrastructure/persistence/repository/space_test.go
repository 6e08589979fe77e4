package repository

import (
	"testing"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceCreateAndGet(t *testing.T) {
	db := newTestDb(t)
	repo := NewSpaceRepository(db, logger.NewNopLogger())
	space := newTestSpace(t, db, "TestSpace")

	byID, err := repo.GetByID(t.Context(), space.ID)
	require.NoError(t, err)
	assert.Equal(t, "TestSpace", byID.Name)

	byName, err := repo.GetByName(t.Context(), "TestSpace")
	require.NoError(t, err)
	assert.Equal(t, space.ID, byName.ID)

	_, err = repo.GetByID(t.Context(), 999)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.GetByName(t.Context(), "NoSuchSpace")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSpaceNameIsUnique(t *testing.T) {
	db := newTestDb(t)
	repo := NewSpaceRepository(db, logger.NewNopLogger())
	newTestSpace(t, db, "TestSpace")

	err := repo.Create(t.Context(), &model.Space{
		Name:         "TestSpace",
		PasswordHash: "irrelevant",
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSpaceDeleteCascadesEvents(t *testing.T) {
	db := newTestDb(t)
	spaces := NewSpaceRepository(db, logger.NewNopLogger())
	events := NewSpaceEventRepository(db, logger.NewNopLogger())
	space := newTestSpace(t, db, "TestSpace")

	require.NoError(t, events.Append(t.Context(), &model.SpaceEvent{SpaceID: space.ID, State: model.StateOpen}))
	require.NoError(t, events.Append(t.Context(), &model.SpaceEvent{SpaceID: space.ID, State: model.StateClosed}))

	require.NoError(t, spaces.Delete(t.Context(), space.ID))

	_, err := spaces.GetByID(t.Context(), space.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&model.SpaceEvent{}).Where("space_id = ?", space.ID).Count(&count).Error)
	assert.Zero(t, count, "events must not be orphaned")

	assert.ErrorIs(t, spaces.Delete(t.Context(), space.ID), ErrRecordNotFound)
}
