package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
)

var (
	ErrActiveCartExists = dao.ErrActiveCartExists
)

// Tx is the unit of work every core operation runs in. Methods named
// ...ForUpdate row-lock what they return until the transaction ends.
type Tx interface {
	LockUser(ctx context.Context, userID uint) error

	CreateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	FindCart(ctx context.Context, id uint) (domain.Cart, error)
	FindCartForUpdate(ctx context.Context, id uint) (domain.Cart, error)
	FindActiveCart(ctx context.Context, userID uint) (domain.Cart, error)
	FindActiveCartForUpdate(ctx context.Context, userID uint) (domain.Cart, error)
	UpdateCartStatus(ctx context.Context, id uint, status domain.CartStatus) error

	CreateTickets(ctx context.Context, tickets []domain.Ticket) error
	FindTicketsForUpdate(ctx context.Context, ids []uint) ([]domain.Ticket, error)
	FindRaffleTickets(ctx context.Context, raffleID uint, status domain.TicketStatus) ([]domain.Ticket, error)
	UpdateTickets(ctx context.Context, tickets []domain.Ticket) error
	CountTickets(ctx context.Context, raffleID uint) (domain.TicketCounts, error)

	CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	FindRaffle(ctx context.Context, id uint) (domain.Raffle, error)
	FindRaffleForUpdate(ctx context.Context, id uint) (domain.Raffle, error)
	FindRaffleRefs(ctx context.Context, raffleIDs []uint) (map[uint]domain.RaffleRef, error)
	FindExpiredRaffleIDs(ctx context.Context, now time.Time) ([]uint, error)
	UpdateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	DeleteRaffle(ctx context.Context, id uint) error

	CreateStatistics(ctx context.Context, stats domain.RaffleStatistics) (domain.RaffleStatistics, error)
	FindStatistics(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error)
	FindStatisticsForUpdate(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error)
	UpdateStatistics(ctx context.Context, stats domain.RaffleStatistics) (domain.RaffleStatistics, error)
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

// Transaction runs fn in one database transaction. Any error from fn rolls
// back every write made through tx.
func (s *Store) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return dao.Transaction(ctx, s.db, func(gtx *gorm.DB) error {
		return fn(newTxRepository(gtx))
	})
}

type txRepository struct {
	users   *dao.UserDAO
	carts   *dao.CartDAO
	tickets *dao.TicketDAO
	raffles *dao.RaffleDAO
}

func newTxRepository(tx *gorm.DB) *txRepository {
	return &txRepository{
		users:   dao.NewUserDAO(tx),
		carts:   dao.NewCartDAO(tx),
		tickets: dao.NewTicketDAO(tx),
		raffles: dao.NewRaffleDAO(tx),
	}
}

func (r *txRepository) LockUser(ctx context.Context, userID uint) error {
	if err := r.users.LockByID(ctx, userID); err != nil {
		return wrap("r.users.LockByID", err)
	}

	return nil
}

func (r *txRepository) CreateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	created, err := r.carts.Insert(ctx, cartDomainToDao(cart))
	if err != nil {
		return domain.Cart{}, wrap("r.carts.Insert", err)
	}

	return cartDaoToDomain(created, []dao.Ticket{}), nil
}

func (r *txRepository) FindCart(ctx context.Context, id uint) (domain.Cart, error) {
	cart, err := r.carts.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, wrap("r.carts.FindByID", notFoundCart(err, id))
	}

	return r.withTickets(ctx, cart, false)
}

func (r *txRepository) FindCartForUpdate(ctx context.Context, id uint) (domain.Cart, error) {
	cart, err := r.carts.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Cart{}, wrap("r.carts.FindByIDForUpdate", notFoundCart(err, id))
	}

	return r.withTickets(ctx, cart, true)
}

func (r *txRepository) FindActiveCart(ctx context.Context, userID uint) (domain.Cart, error) {
	cart, err := r.carts.FindActiveByUserID(ctx, userID)
	if err != nil {
		return domain.Cart{}, wrap("r.carts.FindActiveByUserID", err)
	}

	return r.withTickets(ctx, cart, false)
}

func (r *txRepository) FindActiveCartForUpdate(ctx context.Context, userID uint) (domain.Cart, error) {
	cart, err := r.carts.FindActiveByUserIDForUpdate(ctx, userID)
	if err != nil {
		return domain.Cart{}, wrap("r.carts.FindActiveByUserIDForUpdate", err)
	}

	return r.withTickets(ctx, cart, true)
}

func (r *txRepository) withTickets(ctx context.Context, cart dao.Cart, lock bool) (domain.Cart, error) {
	var (
		tickets []dao.Ticket
		err     error
	)
	if lock {
		tickets, err = r.tickets.FindByCartForUpdate(ctx, cart.ID)
	} else {
		tickets, err = r.tickets.FindByCart(ctx, cart.ID)
	}
	if err != nil {
		return domain.Cart{}, wrap("r.tickets.FindByCart", err)
	}

	return cartDaoToDomain(cart, tickets), nil
}

func (r *txRepository) UpdateCartStatus(ctx context.Context, id uint, status domain.CartStatus) error {
	if err := r.carts.UpdateStatus(ctx, id, string(status)); err != nil {
		return wrap("r.carts.UpdateStatus", err)
	}

	return nil
}

func (r *txRepository) CreateTickets(ctx context.Context, tickets []domain.Ticket) error {
	rows := make([]dao.Ticket, len(tickets))
	for i, t := range tickets {
		rows[i] = ticketDomainToDao(t)
	}

	if err := r.tickets.InsertBatch(ctx, rows); err != nil {
		return wrap("r.tickets.InsertBatch", err)
	}

	return nil
}

func (r *txRepository) FindTicketsForUpdate(ctx context.Context, ids []uint) ([]domain.Ticket, error) {
	rows, err := r.tickets.FindByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, wrap("r.tickets.FindByIDsForUpdate", err)
	}

	return ticketsDaoToDomain(rows), nil
}

func (r *txRepository) FindRaffleTickets(ctx context.Context, raffleID uint, status domain.TicketStatus) ([]domain.Ticket, error) {
	rows, err := r.tickets.FindByRaffle(ctx, raffleID, string(status))
	if err != nil {
		return nil, wrap("r.tickets.FindByRaffle", err)
	}

	return ticketsDaoToDomain(rows), nil
}

func (r *txRepository) UpdateTickets(ctx context.Context, tickets []domain.Ticket) error {
	rows := make([]dao.Ticket, len(tickets))
	for i, t := range tickets {
		rows[i] = ticketDomainToDao(t)
	}

	if err := r.tickets.UpdateState(ctx, rows); err != nil {
		return wrap("r.tickets.UpdateState", err)
	}

	return nil
}

func (r *txRepository) CountTickets(ctx context.Context, raffleID uint) (domain.TicketCounts, error) {
	rows, err := r.tickets.CountByStatus(ctx, raffleID)
	if err != nil {
		return domain.TicketCounts{}, wrap("r.tickets.CountByStatus", err)
	}

	var counts domain.TicketCounts
	for _, row := range rows {
		switch domain.TicketStatus(row.Status) {
		case domain.TicketAvailable:
			counts.Available = row.Count
		case domain.TicketReserved:
			counts.Reserved = row.Count
		case domain.TicketSold:
			counts.Sold = row.Count
		}
	}

	return counts, nil
}

func (r *txRepository) CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	created, err := r.raffles.Insert(ctx, raffleDomainToDao(raffle))
	if err != nil {
		return domain.Raffle{}, wrap("r.raffles.Insert", err)
	}

	return raffleDaoToDomain(created), nil
}

func (r *txRepository) FindRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	raffle, err := r.raffles.FindByID(ctx, id)
	if err != nil {
		return domain.Raffle{}, wrap("r.raffles.FindByID", err)
	}

	return raffleDaoToDomain(raffle), nil
}

func (r *txRepository) FindRaffleForUpdate(ctx context.Context, id uint) (domain.Raffle, error) {
	raffle, err := r.raffles.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Raffle{}, wrap("r.raffles.FindByIDForUpdate", err)
	}

	return raffleDaoToDomain(raffle), nil
}

func (r *txRepository) FindRaffleRefs(ctx context.Context, raffleIDs []uint) (map[uint]domain.RaffleRef, error) {
	rows, err := r.raffles.FindRefs(ctx, raffleIDs)
	if err != nil {
		return nil, wrap("r.raffles.FindRefs", err)
	}

	refs := make(map[uint]domain.RaffleRef, len(rows))
	for _, row := range rows {
		refs[row.ID] = domain.RaffleRef{AssociationID: row.AssociationID, Status: domain.RaffleStatus(row.Status)}
	}

	return refs, nil
}

func (r *txRepository) FindExpiredRaffleIDs(ctx context.Context, now time.Time) ([]uint, error) {
	ids, err := r.raffles.FindExpiredIDs(ctx, now)
	if err != nil {
		return nil, wrap("r.raffles.FindExpiredIDs", err)
	}

	return ids, nil
}

func (r *txRepository) UpdateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	updated, err := r.raffles.Update(ctx, raffleDomainToDao(raffle))
	if err != nil {
		return domain.Raffle{}, wrap("r.raffles.Update", err)
	}

	return raffleDaoToDomain(updated), nil
}

func (r *txRepository) DeleteRaffle(ctx context.Context, id uint) error {
	if err := r.raffles.Delete(ctx, id); err != nil {
		return wrap("r.raffles.Delete", err)
	}

	return nil
}

func (r *txRepository) CreateStatistics(ctx context.Context, stats domain.RaffleStatistics) (domain.RaffleStatistics, error) {
	created, err := r.raffles.InsertStatistics(ctx, statisticsDomainToDao(stats))
	if err != nil {
		return domain.RaffleStatistics{}, wrap("r.raffles.InsertStatistics", err)
	}

	return statisticsDaoToDomain(created), nil
}

func (r *txRepository) FindStatistics(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	stats, err := r.raffles.FindStatistics(ctx, raffleID)
	if err != nil {
		return domain.RaffleStatistics{}, wrap("r.raffles.FindStatistics", err)
	}

	return statisticsDaoToDomain(stats), nil
}

func (r *txRepository) FindStatisticsForUpdate(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	stats, err := r.raffles.FindStatisticsForUpdate(ctx, raffleID)
	if err != nil {
		return domain.RaffleStatistics{}, wrap("r.raffles.FindStatisticsForUpdate", err)
	}

	return statisticsDaoToDomain(stats), nil
}

func (r *txRepository) UpdateStatistics(ctx context.Context, stats domain.RaffleStatistics) (domain.RaffleStatistics, error) {
	updated, err := r.raffles.UpdateStatistics(ctx, statisticsDomainToDao(stats))
	if err != nil {
		return domain.RaffleStatistics{}, wrap("r.raffles.UpdateStatistics", err)
	}

	return statisticsDaoToDomain(updated), nil
}

// wrap keeps core error kinds visible and turns every other driver error into
// a StorageError.
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrBusiness),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrStorage):
		return fmt.Errorf("%s -> %w", op, err)
	default:
		return &domain.StorageError{Op: op, Err: err}
	}
}

func notFoundCart(err error, id uint) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError("cart", id)
	}

	return err
}
