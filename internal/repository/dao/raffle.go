package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

type Raffle struct {
	ID               uint            `gorm:"primaryKey"`
	AssociationID    uint            `gorm:"not null;index"`
	Title            string          `gorm:"not null"`
	Description      string          `gorm:"type:text"`
	TotalTickets     int             `gorm:"not null"`
	TicketPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status           string          `gorm:"not null;index"`
	CompletionReason *string         `gorm:"size:32"`
	EndDate          time.Time       `gorm:"not null;index"`
	StartDate        *time.Time
	CompletedAt      *time.Time
	WinningTicketID  *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RaffleStatistics struct {
	ID                    uint            `gorm:"primaryKey"`
	RaffleID              uint            `gorm:"not null;uniqueIndex"`
	AvailableTickets      int             `gorm:"not null"`
	Participants          int             `gorm:"not null;default:0"`
	TicketsPerParticipant decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalOrders           int             `gorm:"not null;default:0"`
	PendingOrders         int             `gorm:"not null;default:0"`
	CompletedOrders       int             `gorm:"not null;default:0"`
	CancelledOrders       int             `gorm:"not null;default:0"`
	UnpaidOrders          int             `gorm:"not null;default:0"`
	RefundedOrders        int             `gorm:"not null;default:0"`
	SoldTickets           int             `gorm:"not null;default:0"`
	Revenue               decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AverageOrderValue     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FirstSaleDate         *time.Time
	LastSaleDate          *time.Time
	UpdatedAt             time.Time
}

func (RaffleStatistics) TableName() string {
	return "raffle_statistics"
}

type RaffleDAO struct {
	db *gorm.DB
}

func NewRaffleDAO(db *gorm.DB) *RaffleDAO {
	return &RaffleDAO{
		db: db,
	}
}

func (d *RaffleDAO) Insert(ctx context.Context, raffle Raffle) (Raffle, error) {
	if err := d.db.WithContext(ctx).Create(&raffle).Error; err != nil {
		return Raffle{}, err
	}

	return raffle, nil
}

func (d *RaffleDAO) FindByID(ctx context.Context, id uint) (Raffle, error) {
	return d.find(d.db.WithContext(ctx), id)
}

func (d *RaffleDAO) FindByIDForUpdate(ctx context.Context, id uint) (Raffle, error) {
	return d.find(forUpdate(d.db.WithContext(ctx)), id)
}

func (d *RaffleDAO) find(db *gorm.DB, id uint) (Raffle, error) {
	var raffle Raffle

	result := db.First(&raffle, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Raffle{}, domain.NewNotFoundError("raffle", id)
		}

		return Raffle{}, result.Error
	}

	return raffle, nil
}

// FindRefs loads the association and status of the given raffles. The
// returned rows carry no other column.
func (d *RaffleDAO) FindRefs(ctx context.Context, ids []uint) ([]Raffle, error) {
	var raffles []Raffle

	result := d.db.WithContext(ctx).Select("id", "association_id", "status").Where("id IN ?", ids).Find(&raffles)
	if result.Error != nil {
		return nil, result.Error
	}

	return raffles, nil
}

func (d *RaffleDAO) Update(ctx context.Context, raffle Raffle) (Raffle, error) {
	if err := d.db.WithContext(ctx).Save(&raffle).Error; err != nil {
		return Raffle{}, err
	}

	return raffle, nil
}

// Delete removes a raffle together with its tickets and statistics.
func (d *RaffleDAO) Delete(ctx context.Context, id uint) error {
	db := d.db.WithContext(ctx)
	if err := db.Where("raffle_id = ?", id).Delete(&Ticket{}).Error; err != nil {
		return err
	}
	if err := db.Where("raffle_id = ?", id).Delete(&RaffleStatistics{}).Error; err != nil {
		return err
	}

	return db.Delete(&Raffle{}, id).Error
}

// FindExpiredIDs lists ACTIVE or PAUSED raffles whose end date is not after now.
func (d *RaffleDAO) FindExpiredIDs(ctx context.Context, now time.Time) ([]uint, error) {
	var ids []uint

	result := d.db.WithContext(ctx).Model(&Raffle{}).
		Where("status IN ? AND end_date <= ?", []string{string(domain.RaffleActive), string(domain.RafflePaused)}, now).
		Order("id ASC").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func (d *RaffleDAO) InsertStatistics(ctx context.Context, stats RaffleStatistics) (RaffleStatistics, error) {
	if err := d.db.WithContext(ctx).Create(&stats).Error; err != nil {
		return RaffleStatistics{}, err
	}

	return stats, nil
}

func (d *RaffleDAO) FindStatistics(ctx context.Context, raffleID uint) (RaffleStatistics, error) {
	return d.findStatistics(d.db.WithContext(ctx), raffleID)
}

func (d *RaffleDAO) FindStatisticsForUpdate(ctx context.Context, raffleID uint) (RaffleStatistics, error) {
	return d.findStatistics(forUpdate(d.db.WithContext(ctx)), raffleID)
}

func (d *RaffleDAO) findStatistics(db *gorm.DB, raffleID uint) (RaffleStatistics, error) {
	var stats RaffleStatistics

	result := db.First(&stats, "raffle_id = ?", raffleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RaffleStatistics{}, &domain.NotFoundError{Resource: "statistics", Field: "raffleID", Value: raffleID}
		}

		return RaffleStatistics{}, result.Error
	}

	return stats, nil
}

func (d *RaffleDAO) UpdateStatistics(ctx context.Context, stats RaffleStatistics) (RaffleStatistics, error) {
	if err := d.db.WithContext(ctx).Save(&stats).Error; err != nil {
		return RaffleStatistics{}, err
	}

	return stats, nil
}
