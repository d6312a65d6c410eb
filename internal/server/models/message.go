package models

import "time"

// Message is the stored message record. ReadAt is nil until the recipient
// reads it.
type Message struct {
	ID           string     `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

// SentMessage is a message seen from its sender.
type SentMessage struct {
	ID     string      `json:"id"`
	ToUser UserSummary `json:"to_user"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
}

// ReceivedMessage is a message seen from its recipient.
type ReceivedMessage struct {
	ID       string      `json:"id"`
	FromUser UserSummary `json:"from_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

// MessageDetail carries both parties of a message.
type MessageDetail struct {
	ID       string      `json:"id"`
	FromUser UserSummary `json:"from_user"`
	ToUser   UserSummary `json:"to_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}
