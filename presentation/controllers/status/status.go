package status

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	statusUseCase "github.com/modeemi/spacestatus/application/usecases/status"
	"github.com/modeemi/spacestatus/domain/model"
	"github.com/modeemi/spacestatus/presentation/middlewares"
)

type StatusController interface {
	OpenSpace(ctx *gin.Context)
	CloseSpace(ctx *gin.Context)
	CreateEvent(ctx *gin.Context)
	ListEvents(ctx *gin.Context)
	LatestEvent(ctx *gin.Context)
}

type statusController struct {
	usecase statusUseCase.StatusUseCase
}

func NewStatusController(usecase statusUseCase.StatusUseCase) StatusController {
	return &statusController{
		usecase: usecase,
	}
}

func (c *statusController) OpenSpace(ctx *gin.Context) {
	c.transition(ctx, c.usecase.Open)
}

func (c *statusController) CloseSpace(ctx *gin.Context) {
	c.transition(ctx, c.usecase.Close)
}

type transitionFunc func(ctx context.Context, spaceID int, creds statusUseCase.Credentials) (*model.SpaceEvent, error)

func (c *statusController) transition(ctx *gin.Context, op transitionFunc) {
	spaceID, ok := spaceIDParam(ctx)
	if !ok {
		return
	}

	creds, ok := middlewares.GetBasicCredentials(ctx)
	if !ok {
		forbidden(ctx)
		return
	}

	event, err := op(ctx.Request.Context(), spaceID, creds)
	if err != nil {
		writeTransitionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEventResponse(event))
}

// CreateEvent is the generic path: the state comes from the body and no
// announcement is sent.
func (c *statusController) CreateEvent(ctx *gin.Context) {
	spaceID, ok := spaceIDParam(ctx)
	if !ok {
		return
	}

	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	creds, ok := middlewares.GetBasicCredentials(ctx)
	if !ok {
		forbidden(ctx)
		return
	}

	event, err := c.usecase.CreateEvent(ctx.Request.Context(), spaceID, model.SpaceEventState(req.State), creds)
	if err != nil {
		if errors.Is(err, statusUseCase.ErrInvalidState) {
			ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation_failed",
				Message: "state must be one of open, closed, unknown",
			})
			return
		}
		writeTransitionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toEventResponse(event))
}

func (c *statusController) ListEvents(ctx *gin.Context) {
	spaceID, ok := spaceIDParam(ctx)
	if !ok {
		return
	}

	var query ListEventsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	events, err := c.usecase.List(ctx.Request.Context(), spaceID, query.Skip, query.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to list events",
		})
		return
	}

	ctx.JSON(http.StatusOK, toEventResponses(events))
}

func (c *statusController) LatestEvent(ctx *gin.Context) {
	spaceID, ok := spaceIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.usecase.Latest(ctx.Request.Context(), spaceID)
	if err != nil {
		if errors.Is(err, statusUseCase.ErrNoEvents) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "No events found for this space",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to load latest event",
		})
		return
	}

	ctx.JSON(http.StatusOK, toEventResponse(event))
}

func spaceIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_request",
			Message: "space id must be an integer",
		})
		return 0, false
	}
	return id, true
}

func forbidden(ctx *gin.Context) {
	ctx.JSON(http.StatusForbidden, ErrorResponse{
		Error:   "forbidden",
		Message: "Forbidden",
	})
}

// writeTransitionError maps usecase errors for the mutation endpoints. A
// missing space answers 403 like a bad password; only read endpoints
// distinguish 404.
func writeTransitionError(ctx *gin.Context, err error) {
	if errors.Is(err, statusUseCase.ErrForbidden) {
		forbidden(ctx)
		return
	}
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "failed to record event",
	})
}
