package models

import "time"

// User is the stored user record. PasswordHash is only ever read by the
// credential check; every outward view is built from UserSummary or UserDetail.
type User struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	JoinedAt     time.Time
	LastLoginAt  time.Time
}

// Registration is the input of a sign-up.
type Registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserSummary is the public identity of a user, used in lists and as the
// counterpart of a message.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserDetail is a user without the password hash.
type UserDetail struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinedAt    time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

func (u *User) Detail() *UserDetail {
	return &UserDetail{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinedAt:    u.JoinedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
