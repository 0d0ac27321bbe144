package model

import "time"

// SoftwareApplication is a tool or application shown on the portfolio,
// identified by its name and an svg icon.
type SoftwareApplication struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Svg       Media     `json:"svg"`
	CreatedAt time.Time `json:"createdAt"`
}
