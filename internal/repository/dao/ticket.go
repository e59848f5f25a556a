package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const ticketInsertBatchSize = 500

type Ticket struct {
	ID         uint   `gorm:"primaryKey"`
	RaffleID   uint   `gorm:"not null;uniqueIndex:idx_tickets_raffle_number"`
	Number     int    `gorm:"not null;uniqueIndex:idx_tickets_raffle_number"`
	Status     string `gorm:"not null;index"`
	CartID     *uint  `gorm:"index"`
	ReservedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TicketStatusCount struct {
	Status string
	Count  int
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) InsertBatch(ctx context.Context, tickets []Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).CreateInBatches(&tickets, ticketInsertBatchSize).Error
}

// FindByIDsForUpdate locks the requested tickets in id order. Unknown ids are
// simply absent from the result.
func (d *TicketDAO) FindByIDsForUpdate(ctx context.Context, ids []uint) ([]Ticket, error) {
	var tickets []Ticket
	if len(ids) == 0 {
		return tickets, nil
	}

	result := forUpdate(d.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByCartForUpdate(ctx context.Context, cartID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := forUpdate(d.db.WithContext(ctx)).
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByCart(ctx context.Context, cartID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("reserved_at ASC, id ASC").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// FindByRaffle lists a raffle's tickets by number, optionally filtered by status.
func (d *TicketDAO) FindByRaffle(ctx context.Context, raffleID uint, status string) ([]Ticket, error) {
	var tickets []Ticket

	query := d.db.WithContext(ctx).Where("raffle_id = ?", raffleID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("number ASC").Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func (d *TicketDAO) CountByStatus(ctx context.Context, raffleID uint) ([]TicketStatusCount, error) {
	var counts []TicketStatusCount

	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Select("status, count(*) AS count").
		Where("raffle_id = ?", raffleID).
		Group("status").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}

// UpdateState writes status, cart and reservation time of each ticket.
func (d *TicketDAO) UpdateState(ctx context.Context, tickets []Ticket) error {
	db := d.db.WithContext(ctx)
	for _, t := range tickets {
		result := db.Model(&Ticket{ID: t.ID}).
			Select("status", "cart_id", "reserved_at").
			Updates(&t)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
