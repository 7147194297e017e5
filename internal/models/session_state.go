package models

// SessionState is the public view of the running game.
type SessionState struct {
	SessionID string       `json:"session_id"`
	Sandbox   bool         `json:"sandbox"`
	Ended     bool         `json:"ended"`
	Outcome   string       `json:"outcome,omitempty"` // "" | bankrupt | abandoned
	Score     int          `json:"score"`
	City      CitySnapshot `json:"city"`
}
