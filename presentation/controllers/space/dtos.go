package space

import "github.com/modeemi/spacestatus/domain/model"

// SpaceResponse carries the public space fields. The password hash and
// Telegram credentials never appear here.
type SpaceResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Logo         string  `json:"logo"`
	URL          string  `json:"url"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	ContactEmail string  `json:"contact_email"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toSpaceResponse(space *model.Space) SpaceResponse {
	return SpaceResponse{
		ID:           space.ID,
		Name:         space.Name,
		Logo:         space.Logo,
		URL:          space.URL,
		Address:      space.Address,
		Lat:          space.Lat,
		Lon:          space.Lon,
		ContactEmail: space.ContactEmail,
	}
}
