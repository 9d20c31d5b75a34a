// Package domain defines shared domain types.
package domain

import "fmt"

// User identifies a Telegram user observed at interaction time. The bot never
// persists users; the id feeds the in-memory registry and the optional
// display fields feed feedback notifications.
type User struct {
	ID        int64
	FirstName string
	Username  string
}

// Label renders the user for admin-facing messages, including the @handle
// when one is set.
func (u User) Label() string {
	if u.Username == "" {
		return u.FirstName
	}
	return fmt.Sprintf("%s (@%s)", u.FirstName, u.Username)
}
