package status

import (
	"time"

	"github.com/modeemi/spacestatus/domain/model"
)

type CreateEventRequest struct {
	State string `json:"state" binding:"required,oneof=open closed unknown"`
}

type ListEventsQuery struct {
	Skip int `form:"skip" binding:"omitempty,gte=0"`
	// An explicit limit=0 is honored and yields an empty page; the default
	// applies only when the parameter is absent.
	Limit int `form:"limit,default=100" binding:"omitempty,gte=0,lte=1000"`
}

type EventResponse struct {
	ID        int       `json:"id"`
	SpaceID   int       `json:"space_id"`
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toEventResponse(event *model.SpaceEvent) EventResponse {
	return EventResponse{
		ID:        event.ID,
		SpaceID:   event.SpaceID,
		Timestamp: event.Timestamp,
		State:     string(event.State),
	}
}

func toEventResponses(events []model.SpaceEvent) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	return out
}
