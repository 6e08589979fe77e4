package dependency

import (
	"fmt"

	spaceUseCase "github.com/modeemi/spacestatus/application/usecases/space"
	statusUseCase "github.com/modeemi/spacestatus/application/usecases/status"
	"github.com/modeemi/spacestatus/domain/repository"
	"github.com/modeemi/spacestatus/infrastructure/config"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/modeemi/spacestatus/infrastructure/notify"
	"github.com/modeemi/spacestatus/infrastructure/persistence/database"
	"github.com/modeemi/spacestatus/infrastructure/persistence/migration"
	"github.com/modeemi/spacestatus/infrastructure/ratelimiter"
	spaceCtrl "github.com/modeemi/spacestatus/presentation/controllers/space"
	statusCtrl "github.com/modeemi/spacestatus/presentation/controllers/status"
)

type Container struct {
	Config *config.Config
	Logger *logger.Logger

	RateLimiter *ratelimiter.FixedWindowRateLimiter
	Dispatcher  *notify.Dispatcher

	SpaceRepo repository.SpaceRepository
	EventRepo repository.SpaceEventRepository

	SpaceUC  spaceUseCase.SpaceUseCase
	StatusUC statusUseCase.StatusUseCase

	SpaceController  spaceCtrl.SpaceController
	StatusController statusCtrl.StatusController
}

// NewAdminContainer wires config, database, and the repositories without the
// HTTP surface. Used by the manage CLI.
func NewAdminContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.GetConfig()
	c.Logger = logger.NewNopLogger()

	if err := database.InitDb(c.Config, c.Logger.Log); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	if err := migration.Up1(database.GetDb()); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	c.initRepositories()

	return c, nil
}

func NewContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.GetConfig()

	loggerInstance, err := logger.NewLogger(c.Config)
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}
	c.Logger = loggerInstance

	c.Logger.Info("Initializing space status API dependencies")

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("error initializing infrastructure: %w", err)
	}

	c.initRepositories()

	c.initUseCases()

	c.initControllers()

	c.Logger.Info("All dependencies initialized successfully")

	return c, nil
}
