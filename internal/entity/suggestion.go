package entity

// Suggestion is the computer's best reply for a board, as served by the move advisor.
type Suggestion struct {
	Board string `json:"board"`
	Cell  int    `json:"cell"`
	Score int    `json:"score"`
}
