package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

const testAssociation uint = 100

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fixture struct {
	store   *memStore
	carts   *CartService
	orders  *OrderService
	raffles *RaffleService
}

func newFixture() fixture {
	store := newMemStore()

	return fixture{
		store:   store,
		carts:   NewCartService(store, fixedClock),
		orders:  NewOrderService(store, fixedClock),
		raffles: NewRaffleService(store, fixedClock),
	}
}

// activeRaffle creates an ACTIVE raffle of total tickets priced 2.50 and
// returns it with its ticket ids in number order.
func (f fixture) activeRaffle(t *testing.T, total int) (domain.Raffle, []uint) {
	t.Helper()
	ctx := context.Background()

	created, err := f.raffles.Create(ctx, domain.Raffle{
		AssociationID: testAssociation,
		Title:         "Summer raffle",
		TotalTickets:  total,
		TicketPrice:   decimal.RequireFromString("2.50"),
		EndDate:       testNow.Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)

	raffle, err := f.raffles.ChangeStatus(ctx, created.ID, domain.RaffleActive)
	require.NoError(t, err)

	tickets, err := f.raffles.Tickets(ctx, raffle.ID, "")
	require.NoError(t, err)
	require.Len(t, tickets, total)

	ids := make([]uint, len(tickets))
	for i, ticket := range tickets {
		ids[i] = ticket.ID
	}

	return raffle, ids
}

func (f fixture) cartFor(t *testing.T, userID uint) domain.Cart {
	t.Helper()

	f.store.addUser(userID)
	cart, err := f.carts.CreateCart(context.Background(), userID, testAssociation)
	require.NoError(t, err)

	return cart
}

func (f fixture) requireBalanced(t *testing.T, raffleID uint) {
	t.Helper()

	raffle := f.store.raffle(raffleID)
	stats := f.store.statistics(raffleID)
	counts := f.store.counts(raffleID)

	require.Equal(t, raffle.TotalTickets, counts.Total())
	require.True(t, stats.Balanced(raffle.TotalTickets, counts.Reserved),
		"sold %d + available %d + reserved %d != total %d",
		stats.SoldTickets, stats.AvailableTickets, counts.Reserved, raffle.TotalTickets)
}
