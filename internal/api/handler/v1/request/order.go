package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errTicketsRequired = errors.New("cannot be blank")

type OrderEventRequest struct {
	Type      string `json:"type"`
	CartID    *uint  `json:"cart_id"`
	TicketIDs []uint `json:"ticket_ids"`
}

func (req *OrderEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In(
			"CREATED", "CANCELLED", "COMPLETED", "REFUNDED", "UNPAID",
		)),
		validation.Field(&req.TicketIDs,
			validation.Length(0, maxTicketsPerRequest),
			validation.By(positiveIDs),
			validation.By(req.requireTickets),
		),
	)
}

func (req *OrderEventRequest) requireTickets(value interface{}) error {
	ids, _ := value.([]uint)
	if req.Type != "CREATED" && len(ids) == 0 {
		return errTicketsRequired
	}

	return nil
}
