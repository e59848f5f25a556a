package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

var ErrActiveCartExists = errors.New("user already has an active cart")

type Cart struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	AssociationID uint   `gorm:"not null"`
	Status        string `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CartDAO struct {
	db *gorm.DB
}

func NewCartDAO(db *gorm.DB) *CartDAO {
	return &CartDAO{
		db: db,
	}
}

func (d *CartDAO) Insert(ctx context.Context, cart Cart) (Cart, error) {
	result := d.db.WithContext(ctx).Create(&cart)
	if result.Error != nil {
		if isUniqueViolation(result.Error, activeCartIndex) {
			return Cart{}, ErrActiveCartExists
		}

		return Cart{}, result.Error
	}

	return cart, nil
}

func (d *CartDAO) FindByID(ctx context.Context, id uint) (Cart, error) {
	return d.first(d.db.WithContext(ctx), "id = ?", id)
}

func (d *CartDAO) FindByIDForUpdate(ctx context.Context, id uint) (Cart, error) {
	return d.first(forUpdate(d.db.WithContext(ctx)), "id = ?", id)
}

func (d *CartDAO) FindActiveByUserID(ctx context.Context, userID uint) (Cart, error) {
	return d.first(d.db.WithContext(ctx), "user_id = ? AND status = ?", userID, string(domain.CartActive))
}

func (d *CartDAO) FindActiveByUserIDForUpdate(ctx context.Context, userID uint) (Cart, error) {
	return d.first(forUpdate(d.db.WithContext(ctx)), "user_id = ? AND status = ?", userID, string(domain.CartActive))
}

func (d *CartDAO) first(db *gorm.DB, query string, args ...any) (Cart, error) {
	var cart Cart

	result := db.Where(query, args...).First(&cart)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Cart{}, &domain.NotFoundError{Resource: "cart"}
		}

		return Cart{}, result.Error
	}

	return cart, nil
}

func (d *CartDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	return d.db.WithContext(ctx).Model(&Cart{ID: id}).Update("status", status).Error
}
