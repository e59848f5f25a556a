package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

type ledgerEntry func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error

// adjustStatistics applies entry once per raffle in counts. Raffle and
// statistics rows are locked in ascending raffle id order. It returns the
// locked raffles in that order.
func adjustStatistics(ctx context.Context, tx repository.Tx, counts map[uint]int, entry ledgerEntry) ([]domain.Raffle, error) {
	ids := make([]uint, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	raffles := make([]domain.Raffle, 0, len(ids))
	for _, id := range ids {
		raffle, err := tx.FindRaffleForUpdate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("tx.FindRaffleForUpdate -> %w", err)
		}

		stats, err := tx.FindStatisticsForUpdate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("tx.FindStatisticsForUpdate -> %w", err)
		}

		if err = entry(raffle, &stats, counts[id]); err != nil {
			return nil, err
		}

		if _, err = tx.UpdateStatistics(ctx, stats); err != nil {
			return nil, fmt.Errorf("tx.UpdateStatistics -> %w", err)
		}

		if err = checkBalance(ctx, tx, raffle, stats); err != nil {
			return nil, err
		}

		raffles = append(raffles, raffle)
	}

	return raffles, nil
}

// checkBalance rejects a unit of work that would leave sold + available +
// reserved different from the raffle's total.
func checkBalance(ctx context.Context, tx repository.Tx, raffle domain.Raffle, stats domain.RaffleStatistics) error {
	counts, err := tx.CountTickets(ctx, raffle.ID)
	if err != nil {
		return fmt.Errorf("tx.CountTickets -> %w", err)
	}

	if !stats.Balanced(raffle.TotalTickets, counts.Reserved) {
		return domain.NewBusinessError(fmt.Sprintf(
			"statistics of raffle %d out of balance: sold %d + available %d + reserved %d != total %d",
			raffle.ID, stats.SoldTickets, stats.AvailableTickets, counts.Reserved, raffle.TotalTickets,
		))
	}

	return nil
}

// absentRaffles reports, for each raffle in counts, whether cart holds no
// ticket of it. Taken before a reservation it marks the raffles the cart joins;
// taken after a release, the ones it leaves.
func absentRaffles(cart domain.Cart, counts map[uint]int) map[uint]bool {
	absent := make(map[uint]bool, len(counts))
	for id := range counts {
		absent[id] = !cart.HoldsRaffle(id)
	}

	return absent
}

func reduceAvailability(joined map[uint]bool) ledgerEntry {
	return func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error {
		return stats.ReduceAvailability(raffle.TotalTickets, n, joined[raffle.ID])
	}
}

func increaseAvailability(left map[uint]bool) ledgerEntry {
	return func(raffle domain.Raffle, stats *domain.RaffleStatistics, n int) error {
		return stats.IncreaseAvailability(raffle.TotalTickets, n, left[raffle.ID])
	}
}
