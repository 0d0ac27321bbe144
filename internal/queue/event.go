// Package queue defines message payloads exchanged over the broker and
// the background consumer that turns them into notification email.
package queue

// MessageReceivedEvent is published when a visitor submits the contact
// form. It carries enough information for the mail consumer to notify
// the portfolio owner without querying the database.
type MessageReceivedEvent struct {
	MessageID  string `json:"message_id"`
	SenderName string `json:"sender_name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}
