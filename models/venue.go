package models

// Court is a single bookable pitch within a venue.
type Court struct {
	ID          string `json:"_id,omitempty"`
	CourtNumber int    `json:"courtNumber"`
	CourtName   string `json:"courtName,omitempty"`
	SurfaceType string `json:"surfaceType,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// OperatingHours is the venue's daily open window in "HH:MM".
type OperatingHours struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Venue is the turf venue ("box") record owned by the turf backend.
type Venue struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	PricePerHour   float64         `json:"pricePerHour"`
	Courts         []Court         `json:"courts,omitempty"`
	OperatingHours *OperatingHours `json:"operatingHours,omitempty"`
}
