package migration

import (
	"time"

	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/infrastructure/security"
	"gorm.io/gorm"
)

// Up1 creates the schema if missing and seeds a placeholder space so a fresh
// install serves a valid space.json immediately.
func Up1(database *gorm.DB) error {
	if err := createTables(database); err != nil {
		return err
	}
	return seedDefaultSpace(database)
}

func createTables(database *gorm.DB) error {
	tables := []any{}

	tables = addNewTable(database, model.Space{}, tables)
	tables = addNewTable(database, model.SpaceEvent{}, tables)

	if len(tables) == 0 {
		return nil
	}
	return database.Migrator().CreateTable(tables...)
}

func addNewTable(database *gorm.DB, model any, tables []any) []any {
	if !database.Migrator().HasTable(model) {
		tables = append(tables, model)
	}
	return tables
}

func seedDefaultSpace(database *gorm.DB) error {
	var count int64
	if err := database.Model(&model.Space{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := security.HashPassword("dummy_password")
	if err != nil {
		return err
	}

	return database.Transaction(func(tx *gorm.DB) error {
		space := model.Space{
			ID:           1,
			Name:         "ModeemiDummySpace",
			PasswordHash: hashed,
			Logo:         "https://trey.fi/media/modeemi-logo-ttyy-1.png",
			URL:          "https://modeemi.fi",
			Address:      "Tietotalo, huone TA013, Korkeakoulunkatu 1, FIN-33720 Tampere, Finland",
			Lat:          61.449940,
			Lon:          23.857036,
			ContactEmail: "modeemi@example.org",
		}
		if err := tx.Create(&space).Error; err != nil {
			return err
		}

		initial := model.SpaceEvent{
			SpaceID:   space.ID,
			Timestamp: time.Now().UTC(),
			State:     model.StateUnknown,
		}
		return tx.Create(&initial).Error
	})
}
