package entity

// MoveRecord is what the journal receives for every transition.
// The game loop never reads one back.
type MoveRecord struct {
	GameID     string   `json:"game_id"`
	Player     Player   `json:"player"`
	Cell       Cell     `json:"cell"`
	Board      [][]Mark `json:"board"`
	Annotation string   `json:"annotation,omitempty"`
}
