// Package model defines the entities persisted by the portfolio backend.
// JSON tags follow the field names the frontends already consume.
package model

// Media identifies a remotely stored asset. PublicID is the object key
// used to delete or replace the asset; URL is where it can be fetched.
type Media struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}
