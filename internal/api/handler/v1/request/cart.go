package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// maxTicketsPerRequest bounds one reserve or release batch.
const maxTicketsPerRequest = 500

type CreateCartRequest struct {
	AssociationID uint `json:"association_id"`
}

func (req *CreateCartRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AssociationID, validation.Required),
	)
}

type TicketIDsRequest struct {
	TicketIDs []uint `json:"ticket_ids"`
}

func (req *TicketIDsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketIDs,
			validation.Required,
			validation.Length(1, maxTicketsPerRequest),
			validation.By(positiveIDs),
		),
	)
}

var errZeroID = errors.New("ids must be positive")

func positiveIDs(value interface{}) error {
	ids, _ := value.([]uint)
	for _, id := range ids {
		if id == 0 {
			return errZeroID
		}
	}

	return nil
}
