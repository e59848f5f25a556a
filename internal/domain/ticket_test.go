package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticketsFixture() []Ticket {
	cartID := uint(5)
	return []Ticket{
		{ID: 1, RaffleID: 1, Number: 1, Status: TicketAvailable},
		{ID: 2, RaffleID: 1, Number: 2, Status: TicketAvailable},
		{ID: 3, RaffleID: 1, Number: 3, Status: TicketReserved, CartID: &cartID},
		{ID: 4, RaffleID: 2, Number: 1, Status: TicketAvailable},
		{ID: 5, RaffleID: 1, Number: 4, Status: TicketSold},
	}
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, UniqueIDs([]uint{3, 0, 1, 3, 2, 1}))
	assert.Empty(t, UniqueIDs([]uint{0}))
}

func TestNewTickets(t *testing.T) {
	tickets := NewTickets(7, 11, 3)

	require.Len(t, tickets, 3)
	for i, ticket := range tickets {
		assert.Equal(t, uint(7), ticket.RaffleID)
		assert.Equal(t, 11+i, ticket.Number)
		assert.Equal(t, TicketAvailable, ticket.Status)
	}
}

func TestReserveTickets(t *testing.T) {
	cart := Cart{ID: 9, AssociationID: 100, Status: CartActive}
	raffles := map[uint]RaffleRef{
		1: {AssociationID: 100, Status: RaffleActive},
		2: {AssociationID: 200, Status: RaffleActive},
	}

	tests := []struct {
		name   string
		ids    []uint
		reason ConflictReason
		bad    []uint
	}{
		{name: "missing", ids: []uint{1, 42}, reason: ConflictTicketNotFound, bad: []uint{42}},
		{name: "other association", ids: []uint{4, 1}, reason: ConflictTicketWrongAssociation, bad: []uint{4}},
		{name: "already reserved", ids: []uint{3, 2}, reason: ConflictTicketNotAvailable, bad: []uint{3}},
		{name: "sold", ids: []uint{5}, reason: ConflictTicketNotAvailable, bad: []uint{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReserveTickets(tt.ids, ticketsFixture(), raffles, cart, testNow)

			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.reason, conflict.Reason)
			assert.Equal(t, tt.bad, conflict.TicketIDs)
			assert.ErrorIs(t, err, ErrConflict)
		})
	}

	for _, status := range []RaffleStatus{RafflePending, RafflePaused, RaffleCompleted} {
		t.Run("raffle "+string(status), func(t *testing.T) {
			closed := map[uint]RaffleRef{1: {AssociationID: 100, Status: status}}

			_, err := ReserveTickets([]uint{2, 1}, ticketsFixture(), closed, cart, testNow)

			var business *BusinessError
			require.ErrorAs(t, err, &business)
			assert.Equal(t, []uint{2, 1}, business.TicketIDs)
			assert.ErrorIs(t, err, ErrBusiness)
		})
	}

	t.Run("ok", func(t *testing.T) {
		reserved, err := ReserveTickets([]uint{2, 1}, ticketsFixture(), raffles, cart, testNow)

		require.NoError(t, err)
		require.Len(t, reserved, 2)
		assert.Equal(t, uint(2), reserved[0].ID)
		for _, ticket := range reserved {
			assert.True(t, ticket.InCart(9))
			assert.Equal(t, testNow, *ticket.ReservedAt)
		}
	})
}

func TestReleaseTickets(t *testing.T) {
	_, err := ReleaseTickets([]uint{3, 2}, ticketsFixture(), 5)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictTicketNotInCart, conflict.Reason)
	assert.Equal(t, []uint{2}, conflict.TicketIDs)

	_, err = ReleaseTickets([]uint{3}, ticketsFixture(), 6)
	assert.ErrorIs(t, err, ErrConflict)

	released, err := ReleaseTickets([]uint{3}, ticketsFixture(), 5)
	require.NoError(t, err)
	assert.Equal(t, TicketAvailable, released[0].Status)
	assert.Nil(t, released[0].CartID)
	assert.Nil(t, released[0].ReservedAt)
}

func TestMarkTickets(t *testing.T) {
	cartID := uint(5)

	sold, err := MarkTickets([]uint{3}, ticketsFixture(), SettleFilter{RaffleID: 1, CartID: &cartID, From: TicketReserved}, TicketSold)
	require.NoError(t, err)
	assert.Equal(t, TicketSold, sold[0].Status)
	assert.Nil(t, sold[0].CartID)

	_, err = MarkTickets([]uint{4}, ticketsFixture(), SettleFilter{RaffleID: 1, From: TicketReserved}, TicketSold)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictTicketWrongRaffle, conflict.Reason)

	_, err = MarkTickets([]uint{1}, ticketsFixture(), SettleFilter{RaffleID: 1, From: TicketSold}, TicketAvailable)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictTicketNotSold, conflict.Reason)

	other := uint(8)
	_, err = MarkTickets([]uint{3}, ticketsFixture(), SettleFilter{RaffleID: 1, CartID: &other, From: TicketReserved}, TicketAvailable)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictTicketNotInCart, conflict.Reason)

	refunded, err := MarkTickets([]uint{5}, ticketsFixture(), SettleFilter{RaffleID: 1, From: TicketSold}, TicketAvailable)
	require.NoError(t, err)
	assert.Equal(t, TicketAvailable, refunded[0].Status)
}

func TestCountByRaffle(t *testing.T) {
	assert.Equal(t, map[uint]int{1: 4, 2: 1}, CountByRaffle(ticketsFixture()))
}
