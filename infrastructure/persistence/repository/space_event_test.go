package repository

import (
	"testing"
	"time"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndLatest(t *testing.T) {
	db := newTestDb(t)
	space := newTestSpace(t, db, "TestSpace")
	repo := NewSpaceEventRepository(db, logger.NewNopLogger())

	latest, err := repo.Latest(t.Context(), space.ID)
	require.NoError(t, err)
	assert.Nil(t, latest, "no events yet")

	first := &model.SpaceEvent{SpaceID: space.ID, State: model.StateOpen}
	require.NoError(t, repo.Append(t.Context(), first))
	assert.False(t, first.Timestamp.IsZero(), "timestamp is server generated")

	second := &model.SpaceEvent{SpaceID: space.ID, State: model.StateClosed}
	require.NoError(t, repo.Append(t.Context(), second))

	latest, err = repo.Latest(t.Context(), space.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, model.StateClosed, latest.State)
}

func TestTimestampRoundTripsOnSqlite(t *testing.T) {
	db := newTestDb(t)
	space := newTestSpace(t, db, "TestSpace")
	repo := NewSpaceEventRepository(db, logger.NewNopLogger())

	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	event := &model.SpaceEvent{SpaceID: space.ID, Timestamp: at, State: model.StateOpen}
	require.NoError(t, repo.Append(t.Context(), event))

	latest, err := repo.Latest(t.Context(), space.ID)
	require.NoError(t, err, "stored timestamp must scan back into time.Time")
	require.NotNil(t, latest)
	assert.True(t, latest.Timestamp.Equal(at))

	listed, err := repo.List(t.Context(), space.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Timestamp.Equal(at))
}

func TestLatestBreaksTimestampTiesByID(t *testing.T) {
	db := newTestDb(t)
	space := newTestSpace(t, db, "TestSpace")
	repo := NewSpaceEventRepository(db, logger.NewNopLogger())

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := &model.SpaceEvent{SpaceID: space.ID, Timestamp: at, State: model.StateOpen}
	second := &model.SpaceEvent{SpaceID: space.ID, Timestamp: at, State: model.StateClosed}
	require.NoError(t, repo.Append(t.Context(), first))
	require.NoError(t, repo.Append(t.Context(), second))

	latest, err := repo.Latest(t.Context(), space.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID, "highest id wins on equal timestamps")
}

func TestAppendToMissingSpaceReportsNotFound(t *testing.T) {
	db := newTestDb(t)
	repo := NewSpaceEventRepository(db, logger.NewNopLogger())

	err := repo.Append(t.Context(), &model.SpaceEvent{SpaceID: 999, State: model.StateOpen})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListInsertionOrderAndPagination(t *testing.T) {
	db := newTestDb(t)
	space := newTestSpace(t, db, "TestSpace")
	other := newTestSpace(t, db, "OtherSpace")
	repo := NewSpaceEventRepository(db, logger.NewNopLogger())

	states := []model.SpaceEventState{
		model.StateOpen, model.StateClosed, model.StateOpen, model.StateUnknown, model.StateClosed,
	}
	ids := make([]int, 0, len(states))
	for _, s := range states {
		e := &model.SpaceEvent{SpaceID: space.ID, State: s}
		require.NoError(t, repo.Append(t.Context(), e))
		ids = append(ids, e.ID)
	}
	require.NoError(t, repo.Append(t.Context(), &model.SpaceEvent{SpaceID: other.ID, State: model.StateOpen}))

	all, err := repo.List(t.Context(), space.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, len(states), "other spaces' events are excluded")
	for i, e := range all {
		assert.Equal(t, ids[i], e.ID, "insertion order")
		assert.Equal(t, states[i], e.State)
	}

	page, err := repo.List(t.Context(), space.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	empty, err := repo.List(t.Context(), space.ID, len(states), 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAttachAndClearMessageID(t *testing.T) {
	db := newTestDb(t)
	space := newTestSpace(t, db, "TestSpace")
	repo := NewSpaceEventRepository(db, logger.NewNopLogger())

	event := &model.SpaceEvent{SpaceID: space.ID, State: model.StateOpen}
	require.NoError(t, repo.Append(t.Context(), event))

	announced, err := repo.LatestAnnounced(t.Context(), space.ID)
	require.NoError(t, err)
	assert.Nil(t, announced)

	require.NoError(t, repo.AttachMessageID(t.Context(), event.ID, 42))

	announced, err = repo.LatestAnnounced(t.Context(), space.ID)
	require.NoError(t, err)
	require.NotNil(t, announced)
	assert.Equal(t, event.ID, announced.ID)
	assert.Equal(t, int64(42), announced.TelegramMessageID.Int64)

	require.NoError(t, repo.ClearMessageID(t.Context(), event.ID))
	announced, err = repo.LatestAnnounced(t.Context(), space.ID)
	require.NoError(t, err)
	assert.Nil(t, announced)

	assert.ErrorIs(t, repo.AttachMessageID(t.Context(), 999, 7), ErrRecordNotFound)
}
