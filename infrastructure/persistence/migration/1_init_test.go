package migration

import (
	"path/filepath"
	"testing"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/infrastructure/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestUp1SeedsPlaceholderSpaceOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Up1(db))

	var space model.Space
	require.NoError(t, db.First(&space, 1).Error)
	assert.Equal(t, "ModeemiDummySpace", space.Name)
	assert.True(t, security.VerifyPassword(space.PasswordHash, "dummy_password"))

	var event model.SpaceEvent
	require.NoError(t, db.Where("space_id = ?", 1).First(&event).Error)
	assert.Equal(t, model.StateUnknown, event.State)
	assert.False(t, event.Timestamp.IsZero())

	// Second run must be a no-op.
	require.NoError(t, Up1(db))

	var spaces, events int64
	require.NoError(t, db.Model(&model.Space{}).Count(&spaces).Error)
	require.NoError(t, db.Model(&model.SpaceEvent{}).Count(&events).Error)
	assert.Equal(t, int64(1), spaces)
	assert.Equal(t, int64(1), events)
}
