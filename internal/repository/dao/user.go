package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = &domain.NotFoundError{Resource: "user"}
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeSave(*gorm.DB) error {
	u.Email = domain.NormalizeEmail(u.Email)
	return nil
}

// ActiveCartRow is the aggregate read backing a user's profile.
type ActiveCartRow struct {
	CartID        uint
	AssociationID uint
	TicketCount   int
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	return d.first(d.db.WithContext(ctx), id, "id = ?", id)
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	user, err := d.first(d.db.WithContext(ctx), 0, "email = ?", domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return User{}, ErrUserNotFound
	}

	return user, err
}

// LockByID takes the row lock that serializes cart creation for one user.
func (d *UserDAO) LockByID(ctx context.Context, id uint) error {
	_, err := d.first(forUpdate(d.db.WithContext(ctx)).Select("id"), id, "id = ?", id)
	return err
}

// FindActiveCart returns the user's ACTIVE cart with its reserved ticket count,
// or nil when the user has none.
func (d *UserDAO) FindActiveCart(ctx context.Context, userID uint) (*ActiveCartRow, error) {
	var rows []ActiveCartRow

	result := d.db.WithContext(ctx).Table("carts").
		Select("carts.id AS cart_id, carts.association_id, COUNT(tickets.id) AS ticket_count").
		Joins("LEFT JOIN tickets ON tickets.cart_id = carts.id AND tickets.status = ?", string(domain.TicketReserved)).
		Where("carts.user_id = ? AND carts.status = ?", userID, string(domain.CartActive)).
		Group("carts.id, carts.association_id").
		Limit(1).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}

func (d *UserDAO) first(db *gorm.DB, id uint, query string, args ...any) (User, error) {
	var user User

	result := db.Where(query, args...).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, domain.NewNotFoundError("user", id)
		}

		return User{}, result.Error
	}

	return user, nil
}
