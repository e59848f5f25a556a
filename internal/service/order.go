package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

// OrderEvent names a lifecycle hook the Orders collaborator reports.
type OrderEvent string

const (
	OrderEventCreated   OrderEvent = "CREATED"
	OrderEventCancelled OrderEvent = "CANCELLED"
	OrderEventCompleted OrderEvent = "COMPLETED"
	OrderEventRefunded  OrderEvent = "REFUNDED"
	OrderEventUnpaid    OrderEvent = "UNPAID"
)

// OrderService applies order lifecycle events to tickets, carts and the
// statistics ledger of one raffle.
type OrderService struct {
	store Store
	now   Clock
}

func NewOrderService(store Store, now Clock) *OrderService {
	return &OrderService{
		store: store,
		now:   now,
	}
}

// Apply dispatches event to the matching hook. cartID is ignored for
// CREATED and REFUNDED.
func (s *OrderService) Apply(ctx context.Context, raffleID uint, event OrderEvent, cartID *uint, ticketIDs []uint) (domain.RaffleStatistics, error) {
	switch event {
	case OrderEventCreated:
		return s.OrderCreated(ctx, raffleID)
	case OrderEventCancelled:
		return s.OrderCancelled(ctx, raffleID, cartID, ticketIDs)
	case OrderEventCompleted:
		return s.OrderCompleted(ctx, raffleID, cartID, ticketIDs)
	case OrderEventRefunded:
		return s.OrderRefunded(ctx, raffleID, ticketIDs)
	case OrderEventUnpaid:
		return s.OrderUnpaid(ctx, raffleID, cartID, ticketIDs)
	default:
		return domain.RaffleStatistics{}, domain.NewBusinessError("unknown order event " + string(event))
	}
}

func (s *OrderService) OrderCreated(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	var stats domain.RaffleStatistics

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		stats, err = tx.FindStatisticsForUpdate(ctx, raffleID)
		if err != nil {
			return fmt.Errorf("tx.FindStatisticsForUpdate -> %w", err)
		}

		stats.OnOrderCreated()

		stats, err = tx.UpdateStatistics(ctx, stats)
		if err != nil {
			return fmt.Errorf("tx.UpdateStatistics -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.RaffleStatistics{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return stats, nil
}

// OrderCompleted sells reserved tickets and completes the raffle when nothing
// is left to sell.
func (s *OrderService) OrderCompleted(ctx context.Context, raffleID uint, cartID *uint, ticketIDs []uint) (domain.RaffleStatistics, error) {
	now := s.now()

	return s.settle(ctx, settlement{
		raffleID:  raffleID,
		cartID:    cartID,
		ticketIDs: ticketIDs,
		from:      domain.TicketReserved,
		to:        domain.TicketSold,
		entry: func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error {
			return stats.OnOrderCompleted(raffle.TicketPrice, n, now)
		},
		checkSoldOut: true,
	})
}

func (s *OrderService) OrderCancelled(ctx context.Context, raffleID uint, cartID *uint, ticketIDs []uint) (domain.RaffleStatistics, error) {
	return s.settle(ctx, settlement{
		raffleID:  raffleID,
		cartID:    cartID,
		ticketIDs: ticketIDs,
		from:      domain.TicketReserved,
		to:        domain.TicketAvailable,
		entry: func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error {
			return stats.OnOrderCancelled(raffle.TotalTickets, n)
		},
	})
}

func (s *OrderService) OrderUnpaid(ctx context.Context, raffleID uint, cartID *uint, ticketIDs []uint) (domain.RaffleStatistics, error) {
	return s.settle(ctx, settlement{
		raffleID:  raffleID,
		cartID:    cartID,
		ticketIDs: ticketIDs,
		from:      domain.TicketReserved,
		to:        domain.TicketAvailable,
		entry: func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error {
			return stats.OnOrderUnpaid(raffle.TotalTickets, n)
		},
	})
}

func (s *OrderService) OrderRefunded(ctx context.Context, raffleID uint, ticketIDs []uint) (domain.RaffleStatistics, error) {
	return s.settle(ctx, settlement{
		raffleID:  raffleID,
		ticketIDs: ticketIDs,
		from:      domain.TicketSold,
		to:        domain.TicketAvailable,
		entry: func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error {
			return stats.OnOrderRefunded(raffle.TotalTickets, raffle.TicketPrice, n)
		},
	})
}

type settlement struct {
	raffleID     uint
	cartID       *uint
	ticketIDs    []uint
	from         domain.TicketStatus
	to           domain.TicketStatus
	entry        ledgerEntry
	checkSoldOut bool
}

func (s *OrderService) settle(ctx context.Context, st settlement) (domain.RaffleStatistics, error) {
	ids, err := requireIDs(st.ticketIDs)
	if err != nil {
		return domain.RaffleStatistics{}, err
	}

	var stats domain.RaffleStatistics

	err = s.store.Transaction(ctx, func(tx repository.Tx) error {
		var (
			cart domain.Cart
			err  error
		)
		if st.cartID != nil {
			cart, err = tx.FindCartForUpdate(ctx, *st.cartID)
			if err != nil {
				return fmt.Errorf("tx.FindCartForUpdate -> %w", err)
			}
		}

		filter := domain.SettleFilter{RaffleID: st.raffleID, CartID: st.cartID, From: st.from}
		if _, err = markTickets(ctx, tx, ids, filter, st.to); err != nil {
			return err
		}

		if st.cartID != nil {
			if err = consumeCart(ctx, tx, cart, ids); err != nil {
				return err
			}
		}

		raffles, err := adjustStatistics(ctx, tx, map[uint]int{st.raffleID: len(ids)}, st.entry)
		if err != nil {
			return err
		}

		if st.checkSoldOut {
			if _, err = completeIfSoldOut(ctx, tx, raffles[0], s.now()); err != nil {
				return err
			}
		}

		stats, err = tx.FindStatistics(ctx, st.raffleID)
		if err != nil {
			return fmt.Errorf("tx.FindStatistics -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.RaffleStatistics{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return stats, nil
}

// consumeCart drops settled tickets from cart and closes it once it is empty.
func consumeCart(ctx context.Context, tx repository.Tx, cart domain.Cart, ids []uint) error {
	cart.Remove(ids)
	if len(cart.Tickets) > 0 || cart.Status != domain.CartActive {
		return nil
	}

	if err := cart.Close(); err != nil {
		return err
	}

	if err := tx.UpdateCartStatus(ctx, cart.ID, cart.Status); err != nil {
		return fmt.Errorf("tx.UpdateCartStatus -> %w", err)
	}

	return nil
}
