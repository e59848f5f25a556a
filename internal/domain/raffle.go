package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RaffleStatus string

const (
	RafflePending   RaffleStatus = "PENDING"
	RaffleActive    RaffleStatus = "ACTIVE"
	RafflePaused    RaffleStatus = "PAUSED"
	RaffleCompleted RaffleStatus = "COMPLETED"
)

func (s RaffleStatus) Valid() bool {
	switch s {
	case RafflePending, RaffleActive, RafflePaused, RaffleCompleted:
		return true
	}

	return false
}

type CompletionReason string

const (
	CompletionAllTicketsSold    CompletionReason = "ALL_TICKETS_SOLD"
	CompletionEndDateReached    CompletionReason = "END_DATE_REACHED"
	CompletionManuallyCompleted CompletionReason = "MANUALLY_COMPLETED"
)

// MinActiveWindow is how far in the future the end date must be for a raffle
// to be (re)activated.
const MinActiveWindow = 24 * time.Hour

// ReactivationOutcome tells what an end-date edit did to a completed raffle.
type ReactivationOutcome string

const (
	ReactivationNotAttempted ReactivationOutcome = "NOT_ATTEMPTED"
	ReactivationSucceeded    ReactivationOutcome = "REACTIVATED"
	ReactivationIneligible   ReactivationOutcome = "INELIGIBLE"
)

// RaffleRef is the part of a raffle a reservation is checked against.
type RaffleRef struct {
	AssociationID uint
	Status        RaffleStatus
}

type Raffle struct {
	ID               uint              `json:"id"`
	AssociationID    uint              `json:"association_id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	TotalTickets     int               `json:"total_tickets"`
	TicketPrice      decimal.Decimal   `json:"ticket_price"`
	Status           RaffleStatus      `json:"status"`
	CompletionReason *CompletionReason `json:"completion_reason"`
	StartDate        *time.Time        `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	CompletedAt      *time.Time        `json:"completed_at"`
	WinningTicketID  *uint             `json:"winning_ticket_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func NewRaffle(associationID uint, title string, totalTickets int, price decimal.Decimal, endDate time.Time) (Raffle, error) {
	if totalTickets <= 0 {
		return Raffle{}, NewBusinessError("a raffle needs at least one ticket")
	}
	if price.IsNegative() {
		return Raffle{}, NewBusinessError("ticket price must not be negative")
	}

	return Raffle{
		AssociationID: associationID,
		Title:         title,
		TotalTickets:  totalTickets,
		TicketPrice:   RoundMoney(price),
		Status:        RafflePending,
		EndDate:       endDate,
	}, nil
}

// Transition applies an explicitly requested status change.
func (r *Raffle) Transition(target RaffleStatus, stats RaffleStatistics, now time.Time) error {
	switch target {
	case RaffleActive:
		return r.Activate(stats, now)
	case RafflePaused:
		return r.Pause()
	case RaffleCompleted:
		return r.CompleteManually(now)
	case RafflePending:
		return NewBusinessError("PENDING is not a valid target status")
	default:
		return NewBusinessError("unknown raffle status " + string(target))
	}
}

func (r *Raffle) Activate(stats RaffleStatistics, now time.Time) error {
	switch r.Status {
	case RafflePending:
		if err := r.checkEndDateWindow(now); err != nil {
			return err
		}
		start := now
		r.StartDate = &start
	case RafflePaused:
		if err := r.checkEndDateWindow(now); err != nil {
			return err
		}
	case RaffleCompleted:
		if err := r.CanReactivate(stats, now); err != nil {
			return err
		}
		r.clearCompletion()
	default:
		return NewBusinessError("raffle is already ACTIVE")
	}
	r.Status = RaffleActive

	return nil
}

func (r *Raffle) Pause() error {
	if r.Status != RaffleActive {
		return NewBusinessError("only an ACTIVE raffle can be paused")
	}
	r.Status = RafflePaused

	return nil
}

func (r *Raffle) CompleteManually(now time.Time) error {
	if r.Status != RaffleActive && r.Status != RafflePaused {
		return NewBusinessError("only an ACTIVE or PAUSED raffle can be completed")
	}
	r.complete(CompletionManuallyCompleted, now)

	return nil
}

// CompleteIfSoldOut completes an ACTIVE or PAUSED raffle when every ticket is SOLD.
func (r *Raffle) CompleteIfSoldOut(counts TicketCounts, now time.Time) bool {
	if r.Status != RaffleActive && r.Status != RafflePaused {
		return false
	}
	if r.TotalTickets == 0 || counts.Sold < r.TotalTickets {
		return false
	}
	r.complete(CompletionAllTicketsSold, now)

	return true
}

// CompleteIfExpired completes an ACTIVE or PAUSED raffle whose end date has passed.
func (r *Raffle) CompleteIfExpired(now time.Time) bool {
	if r.Status != RaffleActive && r.Status != RafflePaused {
		return false
	}
	if now.Before(r.EndDate) {
		return false
	}
	r.complete(CompletionEndDateReached, now)

	return true
}

// CanReactivate checks the rules for COMPLETED -> ACTIVE.
func (r Raffle) CanReactivate(stats RaffleStatistics, now time.Time) error {
	if r.Status != RaffleCompleted {
		return NewBusinessError("only a COMPLETED raffle can be reactivated")
	}
	if r.WinningTicketID != nil {
		return NewBusinessError("a winning ticket has already been drawn")
	}
	if err := r.checkEndDateWindow(now); err != nil {
		return err
	}
	if stats.AvailableTickets <= 0 || r.TotalTickets <= stats.SoldTickets {
		return NewBusinessError("no tickets left to sell")
	}

	return nil
}

// GrowTicketCount raises the ticket count and returns how many tickets to create.
// A raffle sold out earlier reopens while its end date is ahead.
func (r *Raffle) GrowTicketCount(newTotal int, now time.Time) (int, error) {
	if newTotal <= r.TotalTickets {
		return 0, NewBusinessError("ticket count can only be increased")
	}
	if r.Status == RaffleCompleted && r.WinningTicketID != nil {
		return 0, NewBusinessError("a winning ticket has already been drawn")
	}
	added := newTotal - r.TotalTickets
	r.TotalTickets = newTotal

	if r.Status == RaffleCompleted && r.reasonIs(CompletionAllTicketsSold) {
		if now.Before(r.EndDate) {
			r.clearCompletion()
			r.Status = RaffleActive
		} else {
			reason := CompletionEndDateReached
			r.CompletionReason = &reason
		}
	}

	return added, nil
}

// ChangeEndDate sets a new end date. Extending the end date of a raffle
// completed for END_DATE_REACHED tries a reactivation; ineligibility is reported
// as an outcome, never as an error.
func (r *Raffle) ChangeEndDate(endDate time.Time, stats RaffleStatistics, now time.Time) ReactivationOutcome {
	extended := endDate.After(r.EndDate)
	r.EndDate = endDate

	if !extended || r.Status != RaffleCompleted || !r.reasonIs(CompletionEndDateReached) {
		return ReactivationNotAttempted
	}
	if err := r.Activate(stats, now); err != nil {
		return ReactivationIneligible
	}

	return ReactivationSucceeded
}

func (r Raffle) CheckDeletable() error {
	if r.Status != RafflePending {
		return NewBusinessError("only a PENDING raffle can be deleted")
	}

	return nil
}

func (r *Raffle) SetWinner(ticketID uint) error {
	if r.Status != RaffleCompleted {
		return NewBusinessError("a winner can only be drawn for a COMPLETED raffle")
	}
	if r.WinningTicketID != nil {
		return NewBusinessError("a winning ticket has already been drawn")
	}
	r.WinningTicketID = &ticketID

	return nil
}

func (r *Raffle) complete(reason CompletionReason, now time.Time) {
	completedAt := now
	r.Status = RaffleCompleted
	r.CompletionReason = &reason
	r.CompletedAt = &completedAt
}

func (r *Raffle) clearCompletion() {
	r.CompletionReason = nil
	r.CompletedAt = nil
}

func (r Raffle) reasonIs(reason CompletionReason) bool {
	return r.CompletionReason != nil && *r.CompletionReason == reason
}

func (r Raffle) checkEndDateWindow(now time.Time) error {
	if r.EndDate.Before(now.Add(MinActiveWindow)) {
		return NewBusinessError("end date must be at least 24h in the future")
	}

	return nil
}
