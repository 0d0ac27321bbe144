package model

import "time"

// Period is the from/to range of a timeline entry. Free-form strings so
// entries like "2021" or "Present" keep working.
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Timeline is one education/career entry on the portfolio timeline.
type Timeline struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timeline    Period    `json:"timeline"`
	CreatedAt   time.Time `json:"createdAt"`
}
