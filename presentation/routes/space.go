package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/modeemi/spacestatus/presentation/controllers/space"
)

func SpaceRoutes(router *gin.RouterGroup, controller space.SpaceController) {
	spaces := router.Group("/space")
	{
		spaces.GET("/by_id/:id", controller.GetByID)
		spaces.GET("/by_name/:name", controller.GetByName)
		spaces.GET("/:name/space.json", controller.SpaceJSON)
	}
}
