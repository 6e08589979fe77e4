package dependency

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/modeemi/spacestatus/infrastructure/persistence/database"
	"github.com/modeemi/spacestatus/infrastructure/persistence/migration"
	"github.com/modeemi/spacestatus/infrastructure/ratelimiter"
	"go.uber.org/zap"
)

func (c *Container) initInfrastructure() error {
	if c.Config.Sentry.Dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:   c.Config.Sentry.Dsn,
			Debug: c.Config.Sentry.Debug,
		})
		if err != nil {
			c.Logger.Warn("failed to initialize sentry, continuing without it", zap.Error(err))
		} else {
			c.Logger.Info("Sentry initialized successfully")
		}
	}

	if err := database.InitDb(c.Config, c.Logger.Log); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	c.Logger.Info("Database initialized successfully",
		zap.String("driver", c.Config.Database.Driver),
	)

	if err := migration.Up1(database.GetDb()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	c.Logger.Info("Schema and seed data verified")

	c.RateLimiter = ratelimiter.NewFixedWindowRateLimiter(
		c.Config.RateLimiter.RequestsPerWindow,
		c.Config.RateLimiter.Window,
	)

	return nil
}
