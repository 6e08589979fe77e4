package space

import "github.com/modeemi/spacestatus/domain/model"

// SpaceAPIResponse is the SpaceAPI schema version 15 document shape.
type SpaceAPIResponse struct {
	APICompatibility []string         `json:"api_compatibility"`
	Space            string           `json:"space"`
	Logo             string           `json:"logo"`
	URL              string           `json:"url"`
	Location         SpaceAPILocation `json:"location"`
	State            SpaceAPIState    `json:"state"`
	Contact          SpaceAPIContact  `json:"contact"`
}

type SpaceAPILocation struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type SpaceAPIState struct {
	Open bool `json:"open"`
	// Lastchange is epoch seconds of the latest event, null when the space
	// has no events yet.
	Lastchange *int64 `json:"lastchange"`
}

type SpaceAPIContact struct {
	Email string `json:"email"`
}

// BuildProjection derives the public status document from a space and its
// latest event. A nil event means the state is unknown, which projects to
// closed with a null lastchange.
func BuildProjection(space model.Space, latest *model.SpaceEvent) *SpaceAPIResponse {
	state := SpaceAPIState{Open: false}
	if latest != nil {
		state.Open = latest.State == model.StateOpen
		lastchange := latest.Timestamp.Unix()
		state.Lastchange = &lastchange
	}

	return &SpaceAPIResponse{
		APICompatibility: []string{"15"},
		Space:            space.Name,
		Logo:             space.Logo,
		URL:              space.URL,
		Location: SpaceAPILocation{
			Address: space.Address,
			Lat:     space.Lat,
			Lon:     space.Lon,
		},
		State:   state,
		Contact: SpaceAPIContact{Email: space.ContactEmail},
	}
}
