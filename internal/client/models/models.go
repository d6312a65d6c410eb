// Package models defines the client-side views of users and messages shown by
// the messagely CLI.
package models

import "time"

// Registration holds the fields a new account is created with.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// User is the public identity of a user.
type User struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}

type UserDetail struct {
	User
	JoinedAt    time.Time
	LastLoginAt time.Time
}

// Message carries whichever parties the call exposes: sent-message lists
// fill To only, received-message lists fill From only. A nil ReadAt means
// unread.
type Message struct {
	ID     string
	From   *User
	To     *User
	Body   string
	SentAt time.Time
	ReadAt *time.Time
}
