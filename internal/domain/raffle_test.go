package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestRaffle(t *testing.T, total int, endDate time.Time) Raffle {
	t.Helper()

	r, err := NewRaffle(3, "Spring raffle", total, decimal.RequireFromString("1.999"), endDate)
	require.NoError(t, err)
	r.ID = 1

	return r
}

func completedRaffle(t *testing.T, reason CompletionReason, endDate time.Time) Raffle {
	t.Helper()

	r := newTestRaffle(t, 10, endDate)
	r.Status = RaffleCompleted
	r.CompletionReason = &reason
	completedAt := testNow.Add(-time.Hour)
	r.CompletedAt = &completedAt

	return r
}

func TestNewRaffle(t *testing.T) {
	r := newTestRaffle(t, 10, testNow.Add(48*time.Hour))

	assert.Equal(t, RafflePending, r.Status)
	assert.Equal(t, "2.00", r.TicketPrice.StringFixed(2))

	_, err := NewRaffle(3, "x", 0, decimal.Zero, testNow)
	assert.ErrorIs(t, err, ErrBusiness)

	_, err = NewRaffle(3, "x", 1, decimal.NewFromInt(-1), testNow)
	assert.ErrorIs(t, err, ErrBusiness)
}

func TestRaffle_Transition(t *testing.T) {
	farEnd := testNow.Add(72 * time.Hour)
	nearEnd := testNow.Add(time.Hour)
	stats := NewRaffleStatistics(1, 10)

	tests := []struct {
		name    string
		status  RaffleStatus
		endDate time.Time
		target  RaffleStatus
		want    RaffleStatus
		wantErr bool
	}{
		{name: "pending to active", status: RafflePending, endDate: farEnd, target: RaffleActive, want: RaffleActive},
		{name: "pending to active too close", status: RafflePending, endDate: nearEnd, target: RaffleActive, wantErr: true},
		{name: "pending to paused", status: RafflePending, endDate: farEnd, target: RafflePaused, wantErr: true},
		{name: "active to paused", status: RaffleActive, endDate: farEnd, target: RafflePaused, want: RafflePaused},
		{name: "active to active", status: RaffleActive, endDate: farEnd, target: RaffleActive, wantErr: true},
		{name: "paused to active", status: RafflePaused, endDate: farEnd, target: RaffleActive, want: RaffleActive},
		{name: "paused to completed", status: RafflePaused, endDate: farEnd, target: RaffleCompleted, want: RaffleCompleted},
		{name: "active to completed", status: RaffleActive, endDate: farEnd, target: RaffleCompleted, want: RaffleCompleted},
		{name: "pending to completed", status: RafflePending, endDate: farEnd, target: RaffleCompleted, wantErr: true},
		{name: "back to pending", status: RaffleActive, endDate: farEnd, target: RafflePending, wantErr: true},
		{name: "unknown target", status: RaffleActive, endDate: farEnd, target: "ARCHIVED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRaffle(t, 10, tt.endDate)
			r.Status = tt.status
			before := r

			err := r.Transition(tt.target, stats, testNow)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBusiness)
				assert.Equal(t, before, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Status)
		})
	}
}

func TestRaffle_ActivateSetsStartDateOnce(t *testing.T) {
	r := newTestRaffle(t, 10, testNow.Add(72*time.Hour))

	require.NoError(t, r.Activate(NewRaffleStatistics(1, 10), testNow))
	require.NotNil(t, r.StartDate)
	assert.Equal(t, testNow, *r.StartDate)

	require.NoError(t, r.Pause())
	require.NoError(t, r.Activate(NewRaffleStatistics(1, 10), testNow.Add(time.Hour)))
	assert.Equal(t, testNow, *r.StartDate)
}

func TestRaffle_ManualCompletion(t *testing.T) {
	r := newTestRaffle(t, 10, testNow.Add(72*time.Hour))
	r.Status = RaffleActive

	require.NoError(t, r.CompleteManually(testNow))

	assert.Equal(t, RaffleCompleted, r.Status)
	require.NotNil(t, r.CompletionReason)
	assert.Equal(t, CompletionManuallyCompleted, *r.CompletionReason)
	assert.Equal(t, testNow, *r.CompletedAt)
}

func TestRaffle_CompleteIfSoldOut(t *testing.T) {
	r := newTestRaffle(t, 3, testNow.Add(72*time.Hour))
	r.Status = RaffleActive

	assert.False(t, r.CompleteIfSoldOut(TicketCounts{Reserved: 1, Sold: 2}, testNow))
	assert.Equal(t, RaffleActive, r.Status)

	assert.True(t, r.CompleteIfSoldOut(TicketCounts{Sold: 3}, testNow))
	assert.Equal(t, CompletionAllTicketsSold, *r.CompletionReason)

	assert.False(t, r.CompleteIfSoldOut(TicketCounts{Sold: 3}, testNow))

	pending := newTestRaffle(t, 3, testNow.Add(72*time.Hour))
	assert.False(t, pending.CompleteIfSoldOut(TicketCounts{Sold: 3}, testNow))
	assert.Equal(t, RafflePending, pending.Status)
	assert.Nil(t, pending.CompletionReason)

	paused := newTestRaffle(t, 3, testNow.Add(72*time.Hour))
	paused.Status = RafflePaused
	assert.True(t, paused.CompleteIfSoldOut(TicketCounts{Sold: 3}, testNow))
	assert.Equal(t, RaffleCompleted, paused.Status)
}

func TestRaffle_CompleteIfExpired(t *testing.T) {
	r := newTestRaffle(t, 3, testNow)

	assert.False(t, r.CompleteIfExpired(testNow), "pending raffles never expire")

	r.Status = RafflePaused
	assert.False(t, r.CompleteIfExpired(testNow.Add(-time.Minute)))
	assert.True(t, r.CompleteIfExpired(testNow))
	assert.Equal(t, CompletionEndDateReached, *r.CompletionReason)
}

func TestRaffle_CanReactivate(t *testing.T) {
	farEnd := testNow.Add(72 * time.Hour)
	open := NewRaffleStatistics(1, 10)
	open.AvailableTickets = 4
	open.SoldTickets = 6

	soldOut := NewRaffleStatistics(1, 10)
	soldOut.AvailableTickets = 0
	soldOut.SoldTickets = 10

	winner := uint(9)

	tests := []struct {
		name    string
		raffle  func(t *testing.T) Raffle
		stats   RaffleStatistics
		wantErr bool
	}{
		{
			name:   "eligible",
			raffle: func(t *testing.T) Raffle { return completedRaffle(t, CompletionEndDateReached, farEnd) },
			stats:  open,
		},
		{
			name:    "not completed",
			raffle:  func(t *testing.T) Raffle { return newTestRaffle(t, 10, farEnd) },
			stats:   open,
			wantErr: true,
		},
		{
			name: "winner drawn",
			raffle: func(t *testing.T) Raffle {
				r := completedRaffle(t, CompletionEndDateReached, farEnd)
				r.WinningTicketID = &winner
				return r
			},
			stats:   open,
			wantErr: true,
		},
		{
			name:    "end date too close",
			raffle:  func(t *testing.T) Raffle { return completedRaffle(t, CompletionEndDateReached, testNow.Add(time.Hour)) },
			stats:   open,
			wantErr: true,
		},
		{
			name:    "sold out",
			raffle:  func(t *testing.T) Raffle { return completedRaffle(t, CompletionEndDateReached, farEnd) },
			stats:   soldOut,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.raffle(t).CanReactivate(tt.stats, testNow)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBusiness)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRaffle_ChangeEndDate(t *testing.T) {
	open := NewRaffleStatistics(1, 10)
	open.AvailableTickets = 2
	open.SoldTickets = 8

	t.Run("extending an expired raffle reactivates it", func(t *testing.T) {
		r := completedRaffle(t, CompletionEndDateReached, testNow.Add(-time.Hour))

		outcome := r.ChangeEndDate(testNow.Add(72*time.Hour), open, testNow)

		assert.Equal(t, ReactivationSucceeded, outcome)
		assert.Equal(t, RaffleActive, r.Status)
		assert.Nil(t, r.CompletionReason)
		assert.Nil(t, r.CompletedAt)
	})

	t.Run("ineligible extension keeps the new date", func(t *testing.T) {
		r := completedRaffle(t, CompletionEndDateReached, testNow.Add(-time.Hour))
		newEnd := testNow.Add(time.Hour)

		outcome := r.ChangeEndDate(newEnd, open, testNow)

		assert.Equal(t, ReactivationIneligible, outcome)
		assert.Equal(t, RaffleCompleted, r.Status)
		assert.Equal(t, newEnd, r.EndDate)
	})

	t.Run("sold out raffles are not reactivated by date", func(t *testing.T) {
		r := completedRaffle(t, CompletionAllTicketsSold, testNow.Add(time.Hour))

		outcome := r.ChangeEndDate(testNow.Add(72*time.Hour), open, testNow)

		assert.Equal(t, ReactivationNotAttempted, outcome)
		assert.Equal(t, RaffleCompleted, r.Status)
	})

	t.Run("shortening never reactivates", func(t *testing.T) {
		r := completedRaffle(t, CompletionEndDateReached, testNow.Add(96*time.Hour))

		outcome := r.ChangeEndDate(testNow.Add(72*time.Hour), open, testNow)

		assert.Equal(t, ReactivationNotAttempted, outcome)
	})
}

func TestRaffle_GrowTicketCount(t *testing.T) {
	t.Run("reopens a sold out raffle before its end date", func(t *testing.T) {
		r := completedRaffle(t, CompletionAllTicketsSold, testNow.Add(time.Hour))

		added, err := r.GrowTicketCount(15, testNow)

		require.NoError(t, err)
		assert.Equal(t, 5, added)
		assert.Equal(t, 15, r.TotalTickets)
		assert.Equal(t, RaffleActive, r.Status)
		assert.Nil(t, r.CompletionReason)
	})

	t.Run("past end date switches the reason", func(t *testing.T) {
		r := completedRaffle(t, CompletionAllTicketsSold, testNow.Add(-time.Hour))

		_, err := r.GrowTicketCount(12, testNow)

		require.NoError(t, err)
		assert.Equal(t, RaffleCompleted, r.Status)
		assert.Equal(t, CompletionEndDateReached, *r.CompletionReason)
	})

	t.Run("cannot shrink", func(t *testing.T) {
		r := newTestRaffle(t, 10, testNow.Add(time.Hour))

		_, err := r.GrowTicketCount(10, testNow)

		assert.ErrorIs(t, err, ErrBusiness)
		assert.Equal(t, 10, r.TotalTickets)
	})

	t.Run("winner drawn", func(t *testing.T) {
		r := completedRaffle(t, CompletionManuallyCompleted, testNow.Add(time.Hour))
		winner := uint(2)
		r.WinningTicketID = &winner

		_, err := r.GrowTicketCount(11, testNow)

		assert.ErrorIs(t, err, ErrBusiness)
	})
}

func TestRaffle_SetWinner(t *testing.T) {
	r := newTestRaffle(t, 10, testNow)
	assert.ErrorIs(t, r.SetWinner(4), ErrBusiness)

	r = completedRaffle(t, CompletionEndDateReached, testNow)
	require.NoError(t, r.SetWinner(4))
	assert.Equal(t, uint(4), *r.WinningTicketID)
	assert.ErrorIs(t, r.SetWinner(5), ErrBusiness)
}

func TestRaffle_CheckDeletable(t *testing.T) {
	r := newTestRaffle(t, 10, testNow)
	assert.NoError(t, r.CheckDeletable())

	r.Status = RaffleActive
	assert.ErrorIs(t, r.CheckDeletable(), ErrBusiness)
}
