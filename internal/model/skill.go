package model

import "time"

// Skill is a technology the portfolio owner lists with a proficiency
// level and an icon stored in remote object storage.
type Skill struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Proficiency string    `json:"proficiency"`
	Svg         Media     `json:"svg"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
