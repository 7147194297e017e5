package models

import "time"

// Highscore is one row of the highscore table.
type Highscore struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	Day        int       `json:"day"`
	RecordedAt time.Time `json:"recorded_at"`
}
