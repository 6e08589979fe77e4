package dependency

import (
	spaceUseCase "github.com/modeemi/spacestatus/application/usecases/space"
	statusUseCase "github.com/modeemi/spacestatus/application/usecases/status"
	"github.com/modeemi/spacestatus/infrastructure/notify"
)

func (c *Container) initUseCases() {
	if c.Config.Notify.Enabled {
		announcer := notify.NewTelegramAnnouncer(c.Config.NotifyTimeout())
		c.Dispatcher = notify.NewDispatcher(announcer, c.EventRepo, c.Logger, c.Config.NotifyTimeout())
	}

	c.SpaceUC = spaceUseCase.NewSpaceUseCase(c.SpaceRepo, c.EventRepo, c.Logger)
	c.StatusUC = statusUseCase.NewStatusUseCase(c.SpaceRepo, c.EventRepo, c.Dispatcher, c.Logger)

	c.Logger.Info("Use cases initialized successfully")
}
