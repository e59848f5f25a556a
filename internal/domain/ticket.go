package domain

import "time"

type TicketStatus string

const (
	TicketAvailable TicketStatus = "AVAILABLE"
	TicketReserved  TicketStatus = "RESERVED"
	TicketSold      TicketStatus = "SOLD"
)

type Ticket struct {
	ID         uint         `json:"id"`
	RaffleID   uint         `json:"raffle_id"`
	Number     int          `json:"number"`
	Status     TicketStatus `json:"status"`
	CartID     *uint        `json:"cart_id,omitempty"`
	ReservedAt *time.Time   `json:"reserved_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (t Ticket) InCart(cartID uint) bool {
	return t.Status == TicketReserved && t.CartID != nil && *t.CartID == cartID
}

// TicketCounts is the per-status census of one raffle's tickets.
type TicketCounts struct {
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

func (c TicketCounts) Total() int {
	return c.Available + c.Reserved + c.Sold
}

// NewTickets builds count AVAILABLE tickets numbered from first onwards.
func NewTickets(raffleID uint, first, count int) []Ticket {
	tickets := make([]Ticket, count)
	for i := range tickets {
		tickets[i] = Ticket{
			RaffleID: raffleID,
			Number:   first + i,
			Status:   TicketAvailable,
		}
	}

	return tickets
}

// UniqueIDs drops zero and repeated ids, keeping the first occurrence order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// MissingIDs returns the requested ids with no matching ticket.
func MissingIDs(ids []uint, found []Ticket) []uint {
	byID := indexTickets(found)
	var missing []uint
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

// ReserveTickets flips every requested ticket to RESERVED in cart. raffles
// holds the association and status of each raffle of the found tickets; only
// tickets of ACTIVE raffles can be reserved.
func ReserveTickets(ids []uint, found []Ticket, raffles map[uint]RaffleRef, cart Cart, now time.Time) ([]Ticket, error) {
	if missing := MissingIDs(ids, found); len(missing) > 0 {
		return nil, NewConflictError(ConflictTicketNotFound, missing)
	}

	byID := indexTickets(found)
	if bad := filterIDs(ids, byID, func(t Ticket) bool {
		return raffles[t.RaffleID].AssociationID != cart.AssociationID
	}); len(bad) > 0 {
		return nil, NewConflictError(ConflictTicketWrongAssociation, bad)
	}

	if bad := filterIDs(ids, byID, func(t Ticket) bool {
		return raffles[t.RaffleID].Status != RaffleActive
	}); len(bad) > 0 {
		return nil, &BusinessError{Rule: "raffle must be ACTIVE", TicketIDs: bad}
	}

	if bad := filterIDs(ids, byID, func(t Ticket) bool {
		return t.Status != TicketAvailable
	}); len(bad) > 0 {
		return nil, NewConflictError(ConflictTicketNotAvailable, bad)
	}

	cartID := cart.ID
	reserved := make([]Ticket, len(ids))
	for i, id := range ids {
		t := byID[id]
		t.Status = TicketReserved
		t.CartID = &cartID
		reservedAt := now
		t.ReservedAt = &reservedAt
		reserved[i] = t
	}

	return reserved, nil
}

// ReleaseTickets returns every requested ticket of cart to AVAILABLE.
func ReleaseTickets(ids []uint, found []Ticket, cartID uint) ([]Ticket, error) {
	if missing := MissingIDs(ids, found); len(missing) > 0 {
		return nil, NewConflictError(ConflictTicketNotFound, missing)
	}

	byID := indexTickets(found)
	if bad := filterIDs(ids, byID, func(t Ticket) bool {
		return !t.InCart(cartID)
	}); len(bad) > 0 {
		return nil, NewConflictError(ConflictTicketNotInCart, bad)
	}

	released := make([]Ticket, len(ids))
	for i, id := range ids {
		released[i] = makeAvailable(byID[id])
	}

	return released, nil
}

// SettleFilter narrows an order settlement to one raffle and, optionally, one cart.
type SettleFilter struct {
	RaffleID uint
	CartID   *uint
	From     TicketStatus
}

// MarkTickets moves tickets matching filter to status. Only RESERVED->SOLD,
// RESERVED->AVAILABLE and SOLD->AVAILABLE are meaningful here.
func MarkTickets(ids []uint, found []Ticket, filter SettleFilter, to TicketStatus) ([]Ticket, error) {
	if missing := MissingIDs(ids, found); len(missing) > 0 {
		return nil, NewConflictError(ConflictTicketNotFound, missing)
	}

	byID := indexTickets(found)
	if bad := filterIDs(ids, byID, func(t Ticket) bool {
		return t.RaffleID != filter.RaffleID
	}); len(bad) > 0 {
		return nil, NewConflictError(ConflictTicketWrongRaffle, bad)
	}

	if bad := filterIDs(ids, byID, func(t Ticket) bool {
		return t.Status != filter.From
	}); len(bad) > 0 {
		reason := ConflictTicketNotReserved
		if filter.From == TicketSold {
			reason = ConflictTicketNotSold
		}
		return nil, NewConflictError(reason, bad)
	}

	if filter.CartID != nil {
		if bad := filterIDs(ids, byID, func(t Ticket) bool {
			return !t.InCart(*filter.CartID)
		}); len(bad) > 0 {
			return nil, NewConflictError(ConflictTicketNotInCart, bad)
		}
	}

	marked := make([]Ticket, len(ids))
	for i, id := range ids {
		t := byID[id]
		if to == TicketAvailable {
			marked[i] = makeAvailable(t)
			continue
		}
		t.Status = to
		t.CartID = nil
		marked[i] = t
	}

	return marked, nil
}

// CountByRaffle groups tickets by raffle id.
func CountByRaffle(tickets []Ticket) map[uint]int {
	counts := make(map[uint]int)
	for _, t := range tickets {
		counts[t.RaffleID]++
	}

	return counts
}

func makeAvailable(t Ticket) Ticket {
	t.Status = TicketAvailable
	t.CartID = nil
	t.ReservedAt = nil

	return t
}

func indexTickets(tickets []Ticket) map[uint]Ticket {
	byID := make(map[uint]Ticket, len(tickets))
	for _, t := range tickets {
		byID[t.ID] = t
	}

	return byID
}

func filterIDs(ids []uint, byID map[uint]Ticket, bad func(Ticket) bool) []uint {
	var out []uint
	for _, id := range ids {
		if bad(byID[id]) {
			out = append(out, id)
		}
	}

	return out
}
