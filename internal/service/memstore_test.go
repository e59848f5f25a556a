package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

// memStore is an in-memory Store. Transactions run one at a time on a copy
// of the state which replaces the committed state only when fn succeeds.
type memStore struct {
	mu    sync.Mutex
	state memState
}

type memState struct {
	users   map[uint]bool
	carts   map[uint]domain.Cart
	tickets map[uint]domain.Ticket
	raffles map[uint]domain.Raffle
	stats   map[uint]domain.RaffleStatistics
	nextID  uint
}

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			users:   map[uint]bool{},
			carts:   map[uint]domain.Cart{},
			tickets: map[uint]domain.Ticket{},
			raffles: map[uint]domain.Raffle{},
			stats:   map[uint]domain.RaffleStatistics{},
		},
	}
}

func (s *memStore) Transaction(_ context.Context, fn func(tx repository.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{state: s.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = tx.state

	return nil
}

func (s *memStore) addUser(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[id] = true
}

func (s *memStore) ticket(id uint) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.tickets[id]
}

func (s *memStore) statistics(raffleID uint) domain.RaffleStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.stats[raffleID]
}

func (s *memStore) raffle(id uint) domain.Raffle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.raffles[id]
}

func (s *memStore) counts(raffleID uint) domain.TicketCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.countTickets(raffleID)
}

func (s *memStore) activeCarts(userID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.state.carts {
		if c.UserID == userID && c.Status == domain.CartActive {
			n++
		}
	}

	return n
}

func (st memState) clone() memState {
	out := memState{
		users:   make(map[uint]bool, len(st.users)),
		carts:   make(map[uint]domain.Cart, len(st.carts)),
		tickets: make(map[uint]domain.Ticket, len(st.tickets)),
		raffles: make(map[uint]domain.Raffle, len(st.raffles)),
		stats:   make(map[uint]domain.RaffleStatistics, len(st.stats)),
		nextID:  st.nextID,
	}
	for k, v := range st.users {
		out.users[k] = v
	}
	for k, v := range st.carts {
		out.carts[k] = v
	}
	for k, v := range st.tickets {
		out.tickets[k] = v
	}
	for k, v := range st.raffles {
		out.raffles[k] = v
	}
	for k, v := range st.stats {
		out.stats[k] = v
	}

	return out
}

func (st *memState) id() uint {
	st.nextID++
	return st.nextID
}

func (st memState) countTickets(raffleID uint) domain.TicketCounts {
	var counts domain.TicketCounts
	for _, t := range st.tickets {
		if t.RaffleID != raffleID {
			continue
		}
		switch t.Status {
		case domain.TicketAvailable:
			counts.Available++
		case domain.TicketReserved:
			counts.Reserved++
		case domain.TicketSold:
			counts.Sold++
		}
	}

	return counts
}

type memTx struct {
	state memState
}

var _ repository.Tx = (*memTx)(nil)

func (tx *memTx) LockUser(_ context.Context, userID uint) error {
	if !tx.state.users[userID] {
		return domain.NewNotFoundError("user", userID)
	}

	return nil
}

func (tx *memTx) CreateCart(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	for _, c := range tx.state.carts {
		if c.UserID == cart.UserID && c.Status == domain.CartActive {
			return domain.Cart{}, &domain.StorageError{Op: "CreateCart", Err: repository.ErrActiveCartExists}
		}
	}
	cart.ID = tx.state.id()
	cart.Tickets = nil
	tx.state.carts[cart.ID] = cart

	return tx.withTickets(cart), nil
}

func (tx *memTx) FindCart(_ context.Context, id uint) (domain.Cart, error) {
	cart, ok := tx.state.carts[id]
	if !ok {
		return domain.Cart{}, domain.NewNotFoundError("cart", id)
	}

	return tx.withTickets(cart), nil
}

func (tx *memTx) FindCartForUpdate(ctx context.Context, id uint) (domain.Cart, error) {
	return tx.FindCart(ctx, id)
}

func (tx *memTx) FindActiveCart(_ context.Context, userID uint) (domain.Cart, error) {
	for _, c := range tx.state.carts {
		if c.UserID == userID && c.Status == domain.CartActive {
			return tx.withTickets(c), nil
		}
	}

	return domain.Cart{}, &domain.NotFoundError{Resource: "active cart", Field: "userID", Value: userID}
}

func (tx *memTx) FindActiveCartForUpdate(ctx context.Context, userID uint) (domain.Cart, error) {
	return tx.FindActiveCart(ctx, userID)
}

func (tx *memTx) withTickets(cart domain.Cart) domain.Cart {
	cart.Tickets = []domain.Ticket{}
	for _, t := range tx.state.tickets {
		if t.InCart(cart.ID) {
			cart.Tickets = append(cart.Tickets, t)
		}
	}
	sort.Slice(cart.Tickets, func(i, j int) bool { return cart.Tickets[i].ID < cart.Tickets[j].ID })

	return cart
}

func (tx *memTx) UpdateCartStatus(_ context.Context, id uint, status domain.CartStatus) error {
	cart, ok := tx.state.carts[id]
	if !ok {
		return domain.NewNotFoundError("cart", id)
	}
	cart.Status = status
	tx.state.carts[id] = cart

	return nil
}

func (tx *memTx) CreateTickets(_ context.Context, tickets []domain.Ticket) error {
	for _, t := range tickets {
		t.ID = tx.state.id()
		tx.state.tickets[t.ID] = t
	}

	return nil
}

func (tx *memTx) FindTicketsForUpdate(_ context.Context, ids []uint) ([]domain.Ticket, error) {
	var found []domain.Ticket
	for _, id := range ids {
		if t, ok := tx.state.tickets[id]; ok {
			found = append(found, t)
		}
	}

	return found, nil
}

func (tx *memTx) FindRaffleTickets(_ context.Context, raffleID uint, status domain.TicketStatus) ([]domain.Ticket, error) {
	var found []domain.Ticket
	for _, t := range tx.state.tickets {
		if t.RaffleID == raffleID && (status == "" || t.Status == status) {
			found = append(found, t)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Number < found[j].Number })

	return found, nil
}

func (tx *memTx) UpdateTickets(_ context.Context, tickets []domain.Ticket) error {
	for _, t := range tickets {
		tx.state.tickets[t.ID] = t
	}

	return nil
}

func (tx *memTx) CountTickets(_ context.Context, raffleID uint) (domain.TicketCounts, error) {
	return tx.state.countTickets(raffleID), nil
}

func (tx *memTx) CreateRaffle(_ context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	raffle.ID = tx.state.id()
	tx.state.raffles[raffle.ID] = raffle

	return raffle, nil
}

func (tx *memTx) FindRaffle(_ context.Context, id uint) (domain.Raffle, error) {
	raffle, ok := tx.state.raffles[id]
	if !ok {
		return domain.Raffle{}, domain.NewNotFoundError("raffle", id)
	}

	return raffle, nil
}

func (tx *memTx) FindRaffleForUpdate(ctx context.Context, id uint) (domain.Raffle, error) {
	return tx.FindRaffle(ctx, id)
}

func (tx *memTx) FindRaffleRefs(_ context.Context, raffleIDs []uint) (map[uint]domain.RaffleRef, error) {
	out := make(map[uint]domain.RaffleRef, len(raffleIDs))
	for _, id := range raffleIDs {
		if r, ok := tx.state.raffles[id]; ok {
			out[id] = domain.RaffleRef{AssociationID: r.AssociationID, Status: r.Status}
		}
	}

	return out, nil
}

func (tx *memTx) FindExpiredRaffleIDs(_ context.Context, now time.Time) ([]uint, error) {
	var ids []uint
	for _, r := range tx.state.raffles {
		active := r.Status == domain.RaffleActive || r.Status == domain.RafflePaused
		if active && !r.EndDate.After(now) {
			ids = append(ids, r.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

func (tx *memTx) UpdateRaffle(_ context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	tx.state.raffles[raffle.ID] = raffle

	return raffle, nil
}

func (tx *memTx) DeleteRaffle(_ context.Context, id uint) error {
	for tid, t := range tx.state.tickets {
		if t.RaffleID == id {
			delete(tx.state.tickets, tid)
		}
	}
	delete(tx.state.stats, id)
	delete(tx.state.raffles, id)

	return nil
}

func (tx *memTx) CreateStatistics(_ context.Context, stats domain.RaffleStatistics) (domain.RaffleStatistics, error) {
	stats.ID = tx.state.id()
	tx.state.stats[stats.RaffleID] = stats

	return stats, nil
}

func (tx *memTx) FindStatistics(_ context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	stats, ok := tx.state.stats[raffleID]
	if !ok {
		return domain.RaffleStatistics{}, &domain.NotFoundError{Resource: "statistics", Field: "raffleID", Value: raffleID}
	}

	return stats, nil
}

func (tx *memTx) FindStatisticsForUpdate(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	return tx.FindStatistics(ctx, raffleID)
}

func (tx *memTx) UpdateStatistics(_ context.Context, stats domain.RaffleStatistics) (domain.RaffleStatistics, error) {
	tx.state.stats[stats.RaffleID] = stats

	return stats, nil
}
