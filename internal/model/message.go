package model

import "time"

// Message is a contact-form submission from a portfolio visitor.
type Message struct {
	ID         string    `json:"id"`
	SenderName string    `json:"senderName"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
