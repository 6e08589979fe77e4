package dependency

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/modeemi/spacestatus/infrastructure/metrics"
	"github.com/modeemi/spacestatus/infrastructure/persistence/database"
	spaceCtrl "github.com/modeemi/spacestatus/presentation/controllers/space"
	statusCtrl "github.com/modeemi/spacestatus/presentation/controllers/status"
	"github.com/modeemi/spacestatus/presentation/middlewares"
	"github.com/modeemi/spacestatus/presentation/routes"
	"go.uber.org/zap"
)

func (c *Container) initControllers() {
	c.SpaceController = spaceCtrl.NewSpaceController(c.SpaceUC)
	c.StatusController = statusCtrl.NewStatusController(c.StatusUC)

	c.Logger.Info("Controllers initialized successfully")
}

func (c *Container) SetupRouter() *gin.Engine {
	switch c.Config.Server.RunMode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	binding.Validator = new(middlewares.DefaultValidator)

	router := gin.New()
	router.Use(gin.Recovery())

	if c.Config.Sentry.Dsn != "" {
		router.Use(sentrygin.New(sentrygin.Options{
			Repanic:         true,
			WaitForDelivery: false,
			Timeout:         5 * time.Second,
		}))
	}

	router.Use(middlewares.GinLogger(c.Logger))
	router.Use(middlewares.CorsMiddleware(c.Config))
	router.Use(middlewares.RateLimiterMiddleware(c.RateLimiter, c.Logger))
	router.Use(metrics.Middleware())

	router.GET("/health", c.healthCheckHandler)
	router.GET("/metrics", metrics.Handler())

	root := router.Group("")
	{
		routes.SpaceRoutes(root, c.SpaceController)
		routes.StatusRoutes(root, c.StatusController)
	}

	c.Logger.Info("Router configured successfully")

	return router
}

func (c *Container) healthCheckHandler(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (c *Container) Shutdown() error {
	c.Logger.Info("Shutting down dependencies...")

	if c.RateLimiter != nil {
		c.RateLimiter.Close()
	}

	database.CloseDb()

	if err := c.Logger.Log.Sync(); err != nil {
		c.Logger.Error("failed to sync logger", zap.Error(err))
	}

	return nil
}
