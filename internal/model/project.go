package model

import "time"

// Project is a portfolio project entry. Technologies and Stack are stored
// as JSON arrays in a TEXT column and must be non-empty.
type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GitRepoLink   string    `json:"gitRepoLink"`
	ProjectLink   string    `json:"projectLink"`
	Technologies  []string  `json:"technologies"`
	Stack         []string  `json:"stack"`
	Deployed      bool      `json:"deployed"`
	ProjectBanner Media     `json:"projectBanner"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
