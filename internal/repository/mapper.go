package repository

import (
	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
)

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func cartDomainToDao(c domain.Cart) dao.Cart {
	return dao.Cart{
		ID:            c.ID,
		UserID:        c.UserID,
		AssociationID: c.AssociationID,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func cartDaoToDomain(c dao.Cart, tickets []dao.Ticket) domain.Cart {
	return domain.Cart{
		ID:            c.ID,
		UserID:        c.UserID,
		AssociationID: c.AssociationID,
		Status:        domain.CartStatus(c.Status),
		Tickets:       ticketsDaoToDomain(tickets),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ticketDomainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:         t.ID,
		RaffleID:   t.RaffleID,
		Number:     t.Number,
		Status:     string(t.Status),
		CartID:     t.CartID,
		ReservedAt: t.ReservedAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func ticketsDaoToDomain(rows []dao.Ticket) []domain.Ticket {
	tickets := make([]domain.Ticket, len(rows))
	for i, t := range rows {
		tickets[i] = domain.Ticket{
			ID:         t.ID,
			RaffleID:   t.RaffleID,
			Number:     t.Number,
			Status:     domain.TicketStatus(t.Status),
			CartID:     t.CartID,
			ReservedAt: t.ReservedAt,
			CreatedAt:  t.CreatedAt,
			UpdatedAt:  t.UpdatedAt,
		}
	}

	return tickets
}

func raffleDomainToDao(r domain.Raffle) dao.Raffle {
	var reason *string
	if r.CompletionReason != nil {
		s := string(*r.CompletionReason)
		reason = &s
	}

	return dao.Raffle{
		ID:               r.ID,
		AssociationID:    r.AssociationID,
		Title:            r.Title,
		Description:      r.Description,
		TotalTickets:     r.TotalTickets,
		TicketPrice:      r.TicketPrice,
		Status:           string(r.Status),
		CompletionReason: reason,
		EndDate:          r.EndDate,
		StartDate:        r.StartDate,
		CompletedAt:      r.CompletedAt,
		WinningTicketID:  r.WinningTicketID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func raffleDaoToDomain(r dao.Raffle) domain.Raffle {
	var reason *domain.CompletionReason
	if r.CompletionReason != nil {
		c := domain.CompletionReason(*r.CompletionReason)
		reason = &c
	}

	return domain.Raffle{
		ID:               r.ID,
		AssociationID:    r.AssociationID,
		Title:            r.Title,
		Description:      r.Description,
		TotalTickets:     r.TotalTickets,
		TicketPrice:      r.TicketPrice,
		Status:           domain.RaffleStatus(r.Status),
		CompletionReason: reason,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		CompletedAt:      r.CompletedAt,
		WinningTicketID:  r.WinningTicketID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func statisticsDomainToDao(s domain.RaffleStatistics) dao.RaffleStatistics {
	return dao.RaffleStatistics{
		ID:                    s.ID,
		RaffleID:              s.RaffleID,
		AvailableTickets:      s.AvailableTickets,
		Participants:          s.Participants,
		TicketsPerParticipant: s.TicketsPerParticipant,
		TotalOrders:           s.TotalOrders,
		PendingOrders:         s.PendingOrders,
		CompletedOrders:       s.CompletedOrders,
		CancelledOrders:       s.CancelledOrders,
		UnpaidOrders:          s.UnpaidOrders,
		RefundedOrders:        s.RefundedOrders,
		SoldTickets:           s.SoldTickets,
		Revenue:               s.Revenue,
		AverageOrderValue:     s.AverageOrderValue,
		FirstSaleDate:         s.FirstSaleDate,
		LastSaleDate:          s.LastSaleDate,
		UpdatedAt:             s.UpdatedAt,
	}
}

func statisticsDaoToDomain(s dao.RaffleStatistics) domain.RaffleStatistics {
	return domain.RaffleStatistics{
		ID:                    s.ID,
		RaffleID:              s.RaffleID,
		AvailableTickets:      s.AvailableTickets,
		Participants:          s.Participants,
		TicketsPerParticipant: s.TicketsPerParticipant,
		TotalOrders:           s.TotalOrders,
		PendingOrders:         s.PendingOrders,
		CompletedOrders:       s.CompletedOrders,
		CancelledOrders:       s.CancelledOrders,
		UnpaidOrders:          s.UnpaidOrders,
		RefundedOrders:        s.RefundedOrders,
		SoldTickets:           s.SoldTickets,
		Revenue:               s.Revenue,
		AverageOrderValue:     s.AverageOrderValue,
		FirstSaleDate:         s.FirstSaleDate,
		LastSaleDate:          s.LastSaleDate,
		UpdatedAt:             s.UpdatedAt,
	}
}
