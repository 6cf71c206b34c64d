package dto

type PositionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReplacePositionsRequest swaps the whole position list. Duplicate names
// collapse to their first occurrence; an empty list clears everything.
type ReplacePositionsRequest struct {
	Positions []string `json:"positions"`
}

// AddPositionRequest appends a single new position name.
type AddPositionRequest struct {
	Name string `json:"name" binding:"required"`
}
