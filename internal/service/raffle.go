package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

type RaffleService struct {
	store Store
	now   Clock
	pick  func(n int) (int, error)
}

func NewRaffleService(store Store, now Clock) *RaffleService {
	return &RaffleService{
		store: store,
		now:   now,
		pick:  randomIndex,
	}
}

// Create stores a PENDING raffle with tickets numbered 1..TotalTickets and
// a fresh statistics row.
func (s *RaffleService) Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	pending, err := domain.NewRaffle(raffle.AssociationID, raffle.Title, raffle.TotalTickets, raffle.TicketPrice, raffle.EndDate)
	if err != nil {
		return domain.Raffle{}, err
	}
	pending.Description = raffle.Description

	var created domain.Raffle

	err = s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		created, err = tx.CreateRaffle(ctx, pending)
		if err != nil {
			return fmt.Errorf("tx.CreateRaffle -> %w", err)
		}

		if err = tx.CreateTickets(ctx, domain.NewTickets(created.ID, 1, created.TotalTickets)); err != nil {
			return fmt.Errorf("tx.CreateTickets -> %w", err)
		}

		if _, err = tx.CreateStatistics(ctx, domain.NewRaffleStatistics(created.ID, created.TotalTickets)); err != nil {
			return fmt.Errorf("tx.CreateStatistics -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return created, nil
}

func (s *RaffleService) Get(ctx context.Context, id uint) (domain.Raffle, error) {
	var raffle domain.Raffle

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		raffle, err = tx.FindRaffle(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.FindRaffle -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return raffle, nil
}

func (s *RaffleService) Statistics(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	var stats domain.RaffleStatistics

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		if _, err := tx.FindRaffle(ctx, raffleID); err != nil {
			return fmt.Errorf("tx.FindRaffle -> %w", err)
		}

		var err error
		stats, err = tx.FindStatistics(ctx, raffleID)
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

// Tickets lists the raffle's tickets by number. An empty status lists all.
func (s *RaffleService) Tickets(ctx context.Context, raffleID uint, status domain.TicketStatus) ([]domain.Ticket, error) {
	var tickets []domain.Ticket

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		if _, err := tx.FindRaffle(ctx, raffleID); err != nil {
			return fmt.Errorf("tx.FindRaffle -> %w", err)
		}

		var err error
		tickets, err = tx.FindRaffleTickets(ctx, raffleID, status)
		if err != nil {
			return fmt.Errorf("tx.FindRaffleTickets -> %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return tickets, nil
}

// ChangeStatus applies an explicit transition request to ACTIVE, PAUSED or COMPLETED.
func (s *RaffleService) ChangeStatus(ctx context.Context, id uint, target domain.RaffleStatus) (domain.Raffle, error) {
	var raffle domain.Raffle

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		locked, stats, err := lockRaffle(ctx, tx, id)
		if err != nil {
			return err
		}

		if err = locked.Transition(target, stats, s.now()); err != nil {
			return err
		}

		raffle, err = tx.UpdateRaffle(ctx, locked)
		if err != nil {
			return fmt.Errorf("tx.UpdateRaffle -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}
	logTransition(raffle, "status requested")

	return raffle, nil
}

// UpdateEndDate moves the end date. Extending a raffle completed for
// END_DATE_REACHED attempts a reactivation whose result is returned as outcome.
func (s *RaffleService) UpdateEndDate(ctx context.Context, id uint, endDate time.Time) (domain.Raffle, domain.ReactivationOutcome, error) {
	var (
		raffle  domain.Raffle
		outcome domain.ReactivationOutcome
	)

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		locked, stats, err := lockRaffle(ctx, tx, id)
		if err != nil {
			return err
		}

		outcome = locked.ChangeEndDate(endDate, stats, s.now())

		raffle, err = tx.UpdateRaffle(ctx, locked)
		if err != nil {
			return fmt.Errorf("tx.UpdateRaffle -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Raffle{}, "", fmt.Errorf("s.store.Transaction -> %w", err)
	}

	switch outcome {
	case domain.ReactivationSucceeded:
		logTransition(raffle, "end date extended")
	case domain.ReactivationIneligible:
		zap.L().Info("raffle not eligible for reactivation", zap.Uint("raffleID", raffle.ID))
	}

	return raffle, outcome, nil
}

// IncreaseTicketCount creates the tickets numbered after the current total.
func (s *RaffleService) IncreaseTicketCount(ctx context.Context, id uint, totalTickets int) (domain.Raffle, error) {
	var (
		raffle domain.Raffle
		before domain.RaffleStatus
	)

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		locked, stats, err := lockRaffle(ctx, tx, id)
		if err != nil {
			return err
		}
		before = locked.Status

		firstNumber := locked.TotalTickets + 1
		added, err := locked.GrowTicketCount(totalTickets, s.now())
		if err != nil {
			return err
		}

		if err = stats.GrowCapacity(locked.TotalTickets, added); err != nil {
			return err
		}

		if err = tx.CreateTickets(ctx, domain.NewTickets(locked.ID, firstNumber, added)); err != nil {
			return fmt.Errorf("tx.CreateTickets -> %w", err)
		}

		if stats, err = tx.UpdateStatistics(ctx, stats); err != nil {
			return fmt.Errorf("tx.UpdateStatistics -> %w", err)
		}

		raffle, err = tx.UpdateRaffle(ctx, locked)
		if err != nil {
			return fmt.Errorf("tx.UpdateRaffle -> %w", err)
		}

		return checkBalance(ctx, tx, raffle, stats)
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}
	if raffle.Status != before {
		logTransition(raffle, "ticket count increased")
	}

	return raffle, nil
}

// Delete removes a PENDING raffle with its tickets and statistics.
func (s *RaffleService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		raffle, err := tx.FindRaffleForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.FindRaffleForUpdate -> %w", err)
		}

		if err = raffle.CheckDeletable(); err != nil {
			return err
		}

		counts, err := tx.CountTickets(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.CountTickets -> %w", err)
		}
		if counts.Reserved > 0 || counts.Sold > 0 {
			return domain.NewBusinessError("raffle still has reserved or sold tickets")
		}

		if err = tx.DeleteRaffle(ctx, id); err != nil {
			return fmt.Errorf("tx.DeleteRaffle -> %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("s.store.Transaction -> %w", err)
	}

	return nil
}

// DrawWinner picks the winning ticket of a COMPLETED raffle uniformly among
// its SOLD tickets.
func (s *RaffleService) DrawWinner(ctx context.Context, id uint) (domain.Raffle, error) {
	var raffle domain.Raffle

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		locked, err := tx.FindRaffleForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.FindRaffleForUpdate -> %w", err)
		}

		sold, err := tx.FindRaffleTickets(ctx, id, domain.TicketSold)
		if err != nil {
			return fmt.Errorf("tx.FindRaffleTickets -> %w", err)
		}
		if len(sold) == 0 {
			return domain.NewBusinessError("no sold ticket to draw from")
		}

		i, err := s.pick(len(sold))
		if err != nil {
			return fmt.Errorf("s.pick -> %w", err)
		}

		if err = locked.SetWinner(sold[i].ID); err != nil {
			return err
		}

		raffle, err = tx.UpdateRaffle(ctx, locked)
		if err != nil {
			return fmt.Errorf("tx.UpdateRaffle -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	zap.L().Info("winner drawn", zap.Uint("raffleID", raffle.ID), zap.Uint("ticketID", *raffle.WinningTicketID))

	return raffle, nil
}

// CompleteExpiredRaffles completes every ACTIVE or PAUSED raffle whose end
// date has passed. Each raffle commits on its own; failures are collected.
func (s *RaffleService) CompleteExpiredRaffles(ctx context.Context) (int, error) {
	now := s.now()

	var ids []uint
	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		var err error
		ids, err = tx.FindExpiredRaffleIDs(ctx, now)
		if err != nil {
			return fmt.Errorf("tx.FindExpiredRaffleIDs -> %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	var (
		completed int
		errs      []error
	)
	for _, id := range ids {
		done, err := s.completeExpired(ctx, id, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("raffle %d: %w", id, err))
			continue
		}
		if done {
			completed++
		}
	}

	return completed, errors.Join(errs...)
}

func (s *RaffleService) completeExpired(ctx context.Context, id uint, now time.Time) (bool, error) {
	var (
		raffle domain.Raffle
		done   bool
	)

	err := s.store.Transaction(ctx, func(tx repository.Tx) error {
		locked, err := tx.FindRaffleForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.FindRaffleForUpdate -> %w", err)
		}

		if !locked.CompleteIfExpired(now) {
			return nil
		}

		raffle, err = tx.UpdateRaffle(ctx, locked)
		if err != nil {
			return fmt.Errorf("tx.UpdateRaffle -> %w", err)
		}
		done = true

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("s.store.Transaction -> %w", err)
	}

	if done {
		logTransition(raffle, "end date reached")
	}

	return done, nil
}

func lockRaffle(ctx context.Context, tx repository.Tx, id uint) (domain.Raffle, domain.RaffleStatistics, error) {
	raffle, err := tx.FindRaffleForUpdate(ctx, id)
	if err != nil {
		return domain.Raffle{}, domain.RaffleStatistics{}, fmt.Errorf("tx.FindRaffleForUpdate -> %w", err)
	}

	stats, err := tx.FindStatisticsForUpdate(ctx, id)
	if err != nil {
		return domain.Raffle{}, domain.RaffleStatistics{}, fmt.Errorf("tx.FindStatisticsForUpdate -> %w", err)
	}

	return raffle, stats, nil
}

func randomIndex(n int) (int, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(i.Int64()), nil
}
