package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ActiveCartSummary describes the cart a user is currently filling.
type ActiveCartSummary struct {
	CartID        uint `json:"cart_id"`
	AssociationID uint `json:"association_id"`
	TicketCount   int  `json:"ticket_count"`
}

type UserProfile struct {
	User
	ActiveCart *ActiveCartSummary `json:"active_cart"`
}

// CheckViewableBy allows a user to read only their own profile.
func (u User) CheckViewableBy(callerID uint) error {
	if u.ID != callerID {
		return &ForbiddenError{UserID: callerID, Action: "view this profile"}
	}

	return nil
}
