package model

// Destination is immutable reference data with a caller-assigned id,
// populated only by the schema seed.
type Destination struct {
	ID      int64  `json:"destination_id"`
	Name    string `json:"destination_name"`
	Country string `json:"country"`
}
