package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/modeemi/spacestatus/presentation/controllers/status"
)

func StatusRoutes(router *gin.RouterGroup, controller status.StatusController) {
	events := router.Group("/space_events")
	{
		events.POST("/:id/open", controller.OpenSpace)
		events.POST("/:id/close", controller.CloseSpace)
		events.POST("/:id", controller.CreateEvent)
		events.GET("/:id", controller.ListEvents)
		events.GET("/:id/latest", controller.LatestEvent)
	}
}
