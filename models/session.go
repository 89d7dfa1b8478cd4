package models

import "time"

// OperatorSession is the gateway-side session record for a signed-in venue
// manager. It replaces the dashboard's old habit of scattering token, venue
// id and cached venue details across browser storage: every piece of session
// state lives here and is passed explicitly to whatever needs it.
type OperatorSession struct {
	SessionID     string    `json:"sessionId"`
	TokenHash     string    `json:"tokenHash"`     // SHA-256 of the gateway token, verified on every request
	UpstreamToken string    `json:"upstreamToken"` // bearer token issued by the turf backend
	OperatorName  string    `json:"operatorName,omitempty"`
	OperatorEmail string    `json:"operatorEmail,omitempty"`
	VenueID       string    `json:"venueId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
