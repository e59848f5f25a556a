package domain

import "time"

type CartStatus string

const (
	CartActive CartStatus = "ACTIVE"
	CartClosed CartStatus = "CLOSED"
)

type Cart struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	AssociationID uint       `json:"association_id"`
	Status        CartStatus `json:"status"`
	Tickets       []Ticket   `json:"tickets"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewCart(userID, associationID uint) Cart {
	return Cart{
		UserID:        userID,
		AssociationID: associationID,
		Status:        CartActive,
		Tickets:       []Ticket{},
	}
}

// CheckWritable verifies that callerID may change the cart's reservations.
func (c Cart) CheckWritable(callerID uint) error {
	if c.UserID != callerID {
		return &ForbiddenError{UserID: callerID, Action: "modify this cart"}
	}
	if c.Status != CartActive {
		return NewBusinessError("cart must be ACTIVE")
	}

	return nil
}

func (c Cart) TicketIDs() []uint {
	ids := make([]uint, len(c.Tickets))
	for i, t := range c.Tickets {
		ids[i] = t.ID
	}

	return ids
}

// HoldsRaffle reports whether the cart holds a ticket of raffleID.
func (c Cart) HoldsRaffle(raffleID uint) bool {
	for _, t := range c.Tickets {
		if t.RaffleID == raffleID {
			return true
		}
	}

	return false
}

// Append adds newly reserved tickets at the end of the cart.
func (c *Cart) Append(tickets []Ticket) {
	c.Tickets = append(c.Tickets, tickets...)
}

// Remove drops the given ticket ids from the cart, keeping order.
func (c *Cart) Remove(ids []uint) {
	drop := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := c.Tickets[:0:0]
	for _, t := range c.Tickets {
		if _, ok := drop[t.ID]; !ok {
			kept = append(kept, t)
		}
	}
	c.Tickets = kept
}

// Close moves the cart to CLOSED. The caller must have released its tickets.
func (c *Cart) Close() error {
	if c.Status != CartActive {
		return NewBusinessError("cart must be ACTIVE")
	}
	if len(c.Tickets) > 0 {
		return &BusinessError{Rule: "cart still holds tickets", TicketIDs: c.TicketIDs()}
	}
	c.Status = CartClosed

	return nil
}
