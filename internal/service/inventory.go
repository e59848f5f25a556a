package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

// reserveTickets locks the requested tickets and flips them to RESERVED in cart.
func reserveTickets(ctx context.Context, tx repository.Tx, cart domain.Cart, ids []uint, now time.Time) ([]domain.Ticket, error) {
	found, err := tx.FindTicketsForUpdate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("tx.FindTicketsForUpdate -> %w", err)
	}

	raffles, err := tx.FindRaffleRefs(ctx, raffleIDs(found))
	if err != nil {
		return nil, fmt.Errorf("tx.FindRaffleRefs -> %w", err)
	}

	reserved, err := domain.ReserveTickets(ids, found, raffles, cart, now)
	if err != nil {
		return nil, err
	}

	if err = tx.UpdateTickets(ctx, reserved); err != nil {
		return nil, fmt.Errorf("tx.UpdateTickets -> %w", err)
	}

	return reserved, nil
}

// releaseTickets returns tickets of cart to AVAILABLE. found must hold the
// locked rows of ids.
func releaseTickets(ctx context.Context, tx repository.Tx, cartID uint, ids []uint, found []domain.Ticket) ([]domain.Ticket, error) {
	released, err := domain.ReleaseTickets(ids, found, cartID)
	if err != nil {
		return nil, err
	}

	if err = tx.UpdateTickets(ctx, released); err != nil {
		return nil, fmt.Errorf("tx.UpdateTickets -> %w", err)
	}

	return released, nil
}

// markTickets settles tickets on behalf of an order.
func markTickets(ctx context.Context, tx repository.Tx, ids []uint, filter domain.SettleFilter, to domain.TicketStatus) ([]domain.Ticket, error) {
	found, err := tx.FindTicketsForUpdate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("tx.FindTicketsForUpdate -> %w", err)
	}

	marked, err := domain.MarkTickets(ids, found, filter, to)
	if err != nil {
		return nil, err
	}

	if err = tx.UpdateTickets(ctx, marked); err != nil {
		return nil, fmt.Errorf("tx.UpdateTickets -> %w", err)
	}

	return marked, nil
}

func raffleIDs(tickets []domain.Ticket) []uint {
	counts := domain.CountByRaffle(tickets)
	ids := make([]uint, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	return ids
}

func requireIDs(ids []uint) ([]uint, error) {
	unique := domain.UniqueIDs(ids)
	if len(unique) == 0 {
		return nil, domain.NewBusinessError("at least one ticket id is required")
	}

	return unique, nil
}
