package space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	spaceUseCase "github.com/modeemi/spacestatus/application/usecases/space"
)

type SpaceController interface {
	GetByID(ctx *gin.Context)
	GetByName(ctx *gin.Context)
	SpaceJSON(ctx *gin.Context)
}

type spaceController struct {
	usecase spaceUseCase.SpaceUseCase
}

func NewSpaceController(usecase spaceUseCase.SpaceUseCase) SpaceController {
	return &spaceController{
		usecase: usecase,
	}
}

func (c *spaceController) GetByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_request",
			Message: "space id must be an integer",
		})
		return
	}

	space, err := c.usecase.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, spaceUseCase.ErrSpaceNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Space not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to load space",
		})
		return
	}

	ctx.JSON(http.StatusOK, toSpaceResponse(space))
}

func (c *spaceController) GetByName(ctx *gin.Context) {
	name := ctx.Param("name")

	space, err := c.usecase.GetByName(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, spaceUseCase.ErrSpaceNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Space not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to load space",
		})
		return
	}

	ctx.JSON(http.StatusOK, toSpaceResponse(space))
}

func (c *spaceController) SpaceJSON(ctx *gin.Context) {
	name := ctx.Param("name")

	projection, err := c.usecase.SpaceAPI(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, spaceUseCase.ErrSpaceNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Space not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to build space.json",
		})
		return
	}

	ctx.JSON(http.StatusOK, projection)
}
