package model

import "time"

// User is the single admin account behind the dashboard. The password
// hash and reset-token columns are never serialized; repository reads
// exclude the hash unless explicitly requested for credential checks.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AboutMe      string    `json:"aboutMe"`
	PasswordHash string    `json:"-"`
	Avatar       Media     `json:"avatar"`
	Resume       Media     `json:"resume"`
	PortfolioURL string    `json:"portfolioURL"`
	GithubURL    string    `json:"githubURL"`
	InstagramURL string    `json:"instagramURL"`
	FacebookURL  string    `json:"facebookURL"`
	TwitterURL   string    `json:"twitterURL"`
	LinkedInURL  string    `json:"linkedInURL"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
