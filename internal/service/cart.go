package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

type CartService struct {
	store Store
	now   Clock
}

func NewCartService(store Store, now Clock) *CartService {
	return &CartService{
		store: store,
		now:   now,
	}
}

// CreateCart closes the caller's ACTIVE cart, if any, and opens a new empty
// one. The user row lock serializes concurrent calls for the same caller.
func (s *CartService) CreateCart(ctx context.Context, callerID, associationID uint) (domain.Cart, error) {
	var created domain.Cart

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		if err := tx.LockUser(ctx, callerID); err != nil {
			return fmt.Errorf("tx.LockUser -> %w", err)
		}

		current, err := tx.FindActiveCartForUpdate(ctx, callerID)
		switch {
		case err == nil:
			if err = s.closeCart(ctx, tx, current); err != nil {
				return err
			}
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("tx.FindActiveCartForUpdate -> %w", err)
		}

		created, err = tx.CreateCart(ctx, domain.NewCart(callerID, associationID))
		if err != nil {
			return fmt.Errorf("tx.CreateCart -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	zap.L().Info("cart created", zap.Uint("cartID", created.ID), zap.Uint("userID", callerID))

	return created, nil
}

// closeCart releases every ticket held by cart and moves it to CLOSED.
func (s *CartService) closeCart(ctx context.Context, tx repository.Tx, cart domain.Cart) error {
	if ids := cart.TicketIDs(); len(ids) > 0 {
		released, err := releaseTickets(ctx, tx, cart.ID, ids, cart.Tickets)
		if err != nil {
			return err
		}
		cart.Remove(ids)

		counts := domain.CountByRaffle(released)
		if _, err = adjustStatistics(ctx, tx, counts, increaseAvailability(absentRaffles(cart, counts))); err != nil {
			return err
		}
	}

	if err := cart.Close(); err != nil {
		return err
	}

	if err := tx.UpdateCartStatus(ctx, cart.ID, cart.Status); err != nil {
		return fmt.Errorf("tx.UpdateCartStatus -> %w", err)
	}

	zap.L().Info("cart closed", zap.Uint("cartID", cart.ID), zap.Uint("userID", cart.UserID))

	return nil
}

func (s *CartService) Reserve(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error) {
	ids, err := requireIDs(ticketIDs)
	if err != nil {
		return domain.Cart{}, err
	}

	var cart domain.Cart

	err = s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		cart, err = tx.FindCartForUpdate(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.FindCartForUpdate -> %w", err)
		}

		if err = cart.CheckWritable(callerID); err != nil {
			return err
		}

		reserved, err := reserveTickets(ctx, tx, cart, ids, s.now())
		if err != nil {
			return err
		}
		counts := domain.CountByRaffle(reserved)
		joined := absentRaffles(cart, counts)
		cart.Append(reserved)

		_, err = adjustStatistics(ctx, tx, counts, reduceAvailability(joined))

		return err
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return cart, nil
}

func (s *CartService) Release(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error) {
	ids, err := requireIDs(ticketIDs)
	if err != nil {
		return domain.Cart{}, err
	}

	var cart domain.Cart

	err = s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		cart, err = tx.FindCartForUpdate(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.FindCartForUpdate -> %w", err)
		}

		if err = cart.CheckWritable(callerID); err != nil {
			return err
		}

		found, err := tx.FindTicketsForUpdate(ctx, ids)
		if err != nil {
			return fmt.Errorf("tx.FindTicketsForUpdate -> %w", err)
		}

		if missing := domain.MissingIDs(ids, found); len(missing) > 0 {
			return &domain.BusinessError{Rule: "tickets do not belong to the cart", TicketIDs: missing}
		}

		released, err := releaseTickets(ctx, tx, cart.ID, ids, found)
		if err != nil {
			return err
		}
		cart.Remove(ids)

		counts := domain.CountByRaffle(released)
		_, err = adjustStatistics(ctx, tx, counts, increaseAvailability(absentRaffles(cart, counts)))

		return err
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return cart, nil
}

func (s *CartService) GetActive(ctx context.Context, callerID uint) (domain.Cart, error) {
	var cart domain.Cart

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		cart, err = tx.FindActiveCart(ctx, callerID)
		if err != nil {
			return fmt.Errorf("tx.FindActiveCart -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return cart, nil
}
