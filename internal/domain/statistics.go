package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for every decimal
// counter, rounded half-up on each write.
const MoneyPlaces = 2

// RaffleStatistics is the per-raffle ledger. Methods validate first and only
// then mutate, so a failed call leaves the value untouched.
type RaffleStatistics struct {
	ID                    uint            `json:"id"`
	RaffleID              uint            `json:"raffle_id"`
	AvailableTickets      int             `json:"available_tickets"`
	Participants          int             `json:"participants"`
	TicketsPerParticipant decimal.Decimal `json:"tickets_per_participant"`
	TotalOrders           int             `json:"total_orders"`
	PendingOrders         int             `json:"pending_orders"`
	CompletedOrders       int             `json:"completed_orders"`
	CancelledOrders       int             `json:"cancelled_orders"`
	UnpaidOrders          int             `json:"unpaid_orders"`
	RefundedOrders        int             `json:"refunded_orders"`
	SoldTickets           int             `json:"sold_tickets"`
	Revenue               decimal.Decimal `json:"revenue"`
	AverageOrderValue     decimal.Decimal `json:"average_order_value"`
	FirstSaleDate         *time.Time      `json:"first_sale_date,omitempty"`
	LastSaleDate          *time.Time      `json:"last_sale_date,omitempty"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func NewRaffleStatistics(raffleID uint, totalTickets int) RaffleStatistics {
	return RaffleStatistics{
		RaffleID:              raffleID,
		AvailableTickets:      totalTickets,
		TicketsPerParticipant: decimal.Zero,
		Revenue:               decimal.Zero,
		AverageOrderValue:     decimal.Zero,
	}
}

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ReduceAvailability records a reservation of n tickets. joined is true when
// the reserving cart held no ticket of the raffle before, which makes it a new
// participant.
func (s *RaffleStatistics) ReduceAvailability(totalTickets, n int, joined bool) error {
	if err := checkCount(n); err != nil {
		return err
	}
	available := s.AvailableTickets - n
	if available < 0 {
		return NewBusinessError("insufficient tickets available")
	}

	s.AvailableTickets = available
	if joined {
		s.Participants++
	}
	s.recomputeTicketsPerParticipant(totalTickets)

	return nil
}

// IncreaseAvailability records the release of n reserved tickets. left is true
// when the releasing cart no longer holds any ticket of the raffle. Participants
// never drop below zero, so a release is never refused on that count.
func (s *RaffleStatistics) IncreaseAvailability(totalTickets, n int, left bool) error {
	if err := checkCount(n); err != nil {
		return err
	}
	available, err := s.addAvailable(totalTickets, n)
	if err != nil {
		return err
	}

	s.AvailableTickets = available
	if left && s.Participants > 0 {
		s.Participants--
	}
	s.recomputeTicketsPerParticipant(totalTickets)

	return nil
}

// GrowCapacity makes n freshly created tickets available.
func (s *RaffleStatistics) GrowCapacity(newTotalTickets, n int) error {
	if err := checkCount(n); err != nil {
		return err
	}
	available, err := s.addAvailable(newTotalTickets, n)
	if err != nil {
		return err
	}

	s.AvailableTickets = available
	s.recomputeTicketsPerParticipant(newTotalTickets)

	return nil
}

func (s *RaffleStatistics) OnOrderCreated() {
	s.TotalOrders++
	s.PendingOrders++
}

func (s *RaffleStatistics) OnOrderCancelled(totalTickets, releasedTickets int) error {
	if s.PendingOrders == 0 {
		return NewBusinessError("no pending order to cancel")
	}
	available, err := s.addAvailable(totalTickets, releasedTickets)
	if err != nil {
		return err
	}

	s.PendingOrders--
	s.CancelledOrders++
	s.AvailableTickets = available

	return nil
}

func (s *RaffleStatistics) OnOrderUnpaid(totalTickets, unpaidTickets int) error {
	if s.PendingOrders == 0 {
		return NewBusinessError("no pending order to mark unpaid")
	}
	available, err := s.addAvailable(totalTickets, unpaidTickets)
	if err != nil {
		return err
	}

	s.PendingOrders--
	s.UnpaidOrders++
	s.AvailableTickets = available

	return nil
}

func (s *RaffleStatistics) OnOrderCompleted(ticketPrice decimal.Decimal, soldTickets int, now time.Time) error {
	if err := checkCount(soldTickets); err != nil {
		return err
	}
	if s.PendingOrders == 0 {
		return NewBusinessError("no pending order to complete")
	}

	s.PendingOrders--
	s.SoldTickets += soldTickets
	s.CompletedOrders++
	s.Revenue = RoundMoney(s.Revenue.Add(ticketPrice.Mul(decimal.NewFromInt(int64(soldTickets)))))
	s.recomputeAverageOrderValue()

	saleDate := now
	if s.FirstSaleDate == nil {
		first := now
		s.FirstSaleDate = &first
	}
	s.LastSaleDate = &saleDate

	return nil
}

func (s *RaffleStatistics) OnOrderRefunded(totalTickets int, ticketPrice decimal.Decimal, refundedTickets int) error {
	if err := checkCount(refundedTickets); err != nil {
		return err
	}
	if s.CompletedOrders == 0 {
		return NewBusinessError("no completed order to refund")
	}
	if refundedTickets > s.SoldTickets {
		return NewBusinessError("cannot refund more tickets than sold")
	}
	available, err := s.addAvailable(totalTickets, refundedTickets)
	if err != nil {
		return err
	}

	s.RefundedOrders++
	s.CompletedOrders--
	s.SoldTickets -= refundedTickets
	s.AvailableTickets = available
	s.Revenue = RoundMoney(s.Revenue.Sub(ticketPrice.Mul(decimal.NewFromInt(int64(refundedTickets)))))
	s.recomputeAverageOrderValue()

	return nil
}

// Balanced reports whether sold + available + reserved accounts for every ticket.
func (s RaffleStatistics) Balanced(totalTickets, reserved int) bool {
	return s.SoldTickets+s.AvailableTickets+reserved == totalTickets
}

func (s *RaffleStatistics) addAvailable(totalTickets, n int) (int, error) {
	if n < 0 {
		return 0, NewBusinessError("ticket count must not be negative")
	}
	available := s.AvailableTickets + n
	if available > totalTickets {
		return 0, NewBusinessError("available tickets would exceed total tickets")
	}

	return available, nil
}

func (s *RaffleStatistics) recomputeTicketsPerParticipant(totalTickets int) {
	if s.Participants == 0 {
		s.TicketsPerParticipant = decimal.Zero
		return
	}
	taken := decimal.NewFromInt(int64(totalTickets - s.AvailableTickets))
	s.TicketsPerParticipant = taken.DivRound(decimal.NewFromInt(int64(s.Participants)), MoneyPlaces)
}

func (s *RaffleStatistics) recomputeAverageOrderValue() {
	if s.CompletedOrders == 0 {
		s.AverageOrderValue = decimal.Zero
		return
	}
	s.AverageOrderValue = s.Revenue.DivRound(decimal.NewFromInt(int64(s.CompletedOrders)), MoneyPlaces)
}

func checkCount(n int) error {
	if n <= 0 {
		return NewBusinessError("ticket count must be positive")
	}

	return nil
}
