package repository

import (
	"path/filepath"
	"testing"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&model.Space{}, &model.SpaceEvent{}))

	return db
}

func newTestSpace(t *testing.T, db *gorm.DB, name string) *model.Space {
	t.Helper()

	space := &model.Space{
		Name:         name,
		Logo:         "https://example.org/logo.png",
		URL:          "https://example.org",
		ContactEmail: "owner@example.org",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	}
	require.NoError(t, NewSpaceRepository(db, logger.NewNopLogger()).Create(t.Context(), space))
	return space
}
