package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

// maxTicketsPerRaffle bounds the tickets generated for one raffle.
const maxTicketsPerRaffle = 100000

var errNegativePrice = errors.New("must not be negative")

type CreateRaffleRequest struct {
	AssociationID uint            `json:"association_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TotalTickets  int             `json:"total_tickets"`
	TicketPrice   decimal.Decimal `json:"ticket_price" swaggertype:"string" example:"2.50"`
	EndDate       time.Time       `json:"end_date"`
}

func (req *CreateRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AssociationID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.TotalTickets, validation.Required, validation.Min(1), validation.Max(maxTicketsPerRaffle)),
		validation.Field(&req.TicketPrice, validation.By(nonNegativeDecimal)),
		validation.Field(&req.EndDate, validation.Required),
	)
}

func (req *CreateRaffleRequest) ToDomain() domain.Raffle {
	return domain.Raffle{
		AssociationID: req.AssociationID,
		Title:         req.Title,
		Description:   req.Description,
		TotalTickets:  req.TotalTickets,
		TicketPrice:   req.TicketPrice,
		EndDate:       req.EndDate,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.RafflePending),
			string(domain.RaffleActive),
			string(domain.RafflePaused),
			string(domain.RaffleCompleted),
		)),
	)
}

type UpdateEndDateRequest struct {
	EndDate time.Time `json:"end_date"`
}

func (req *UpdateEndDateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EndDate, validation.Required),
	)
}

type UpdateTicketCountRequest struct {
	TotalTickets int `json:"total_tickets"`
}

func (req *UpdateTicketCountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TotalTickets, validation.Required, validation.Min(1), validation.Max(maxTicketsPerRaffle)),
	)
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errNegativePrice
	}

	return nil
}
