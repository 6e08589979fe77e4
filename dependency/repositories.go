package dependency

import (
	"github.com/modeemi/spacestatus/infrastructure/persistence/database"
	"github.com/modeemi/spacestatus/infrastructure/persistence/repository"
)

func (c *Container) initRepositories() {
	db := database.GetDb()

	c.SpaceRepo = repository.NewSpaceRepository(db, c.Logger)
	c.EventRepo = repository.NewSpaceEventRepository(db, c.Logger)

	c.Logger.Info("Repositories initialized successfully")
}
