package v1

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/domain"
)

type RaffleService interface {
	Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	Get(ctx context.Context, id uint) (domain.Raffle, error)
	Statistics(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error)
	Tickets(ctx context.Context, raffleID uint, status domain.TicketStatus) ([]domain.Ticket, error)
	ChangeStatus(ctx context.Context, id uint, target domain.RaffleStatus) (domain.Raffle, error)
	UpdateEndDate(ctx context.Context, id uint, endDate time.Time) (domain.Raffle, domain.ReactivationOutcome, error)
	IncreaseTicketCount(ctx context.Context, id uint, totalTickets int) (domain.Raffle, error)
	Delete(ctx context.Context, id uint) error
	DrawWinner(ctx context.Context, id uint) (domain.Raffle, error)
}

type RaffleHandler struct {
	svc RaffleService
}

func NewRaffleHandler(svc RaffleService) *RaffleHandler {
	return &RaffleHandler{
		svc: svc,
	}
}

// HandleCreateRaffle godoc
// @Summary      Create a raffle
// @Description  Creates a PENDING raffle with tickets numbered from 1 to total_tickets.
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRaffleRequest  true  "request body"
// @Success      201      {object}  domain.Raffle
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /raffles [post]
// @Security     BearerAuth
func (h *RaffleHandler) HandleCreateRaffle(ctx *gin.Context) {
	var req request.CreateRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleCreateRaffle -> h.svc.Create", err))
		return
	}

	ctx.JSON(http.StatusCreated, raffle)
}

// HandleGetRaffle godoc
// @Summary      Get a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      int  true  "Raffle ID"
// @Success      200       {object}  domain.Raffle
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [get]
// @Security     BearerAuth
func (h *RaffleHandler) HandleGetRaffle(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	raffle, err := h.svc.Get(ctx.Request.Context(), raffleID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleGetRaffle -> h.svc.Get", err))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleGetStatistics godoc
// @Summary      Get the statistics of a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      int  true  "Raffle ID"
// @Success      200       {object}  domain.RaffleStatistics
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/statistics [get]
// @Security     BearerAuth
func (h *RaffleHandler) HandleGetStatistics(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.Statistics(ctx.Request.Context(), raffleID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleGetStatistics -> h.svc.Statistics", err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleGetTickets godoc
// @Summary      List the tickets of a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      int     true   "Raffle ID"
// @Param        status    query     string  false  "AVAILABLE, RESERVED or SOLD"
// @Success      200       {array}   domain.Ticket
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/tickets [get]
// @Security     BearerAuth
func (h *RaffleHandler) HandleGetTickets(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	status := domain.TicketStatus(strings.ToUpper(ctx.Query("status")))
	switch status {
	case "", domain.TicketAvailable, domain.TicketReserved, domain.TicketSold:
	default:
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid ticket status %q", status)))
		return
	}

	tickets, err := h.svc.Tickets(ctx.Request.Context(), raffleID, status)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleGetTickets -> h.svc.Tickets", err))
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleChangeStatus godoc
// @Summary      Change the status of a raffle
// @Description  ACTIVE, PAUSED and COMPLETED are valid targets; PENDING never is.
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      int                          true  "Raffle ID"
// @Param        request   body      request.UpdateStatusRequest  true  "request body"
// @Success      200       {object}  domain.Raffle
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      422       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/status [patch]
// @Security     BearerAuth
func (h *RaffleHandler) HandleChangeStatus(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.ChangeStatus(ctx.Request.Context(), raffleID, domain.RaffleStatus(req.Status))
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleChangeStatus -> h.svc.ChangeStatus", err))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleUpdateEndDate godoc
// @Summary      Change the end date of a raffle
// @Description  Extending a raffle completed because its end date was reached attempts a reactivation; the outcome is returned.
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      int                           true  "Raffle ID"
// @Param        request   body      request.UpdateEndDateRequest  true  "request body"
// @Success      200       {object}  response.EndDateResponse
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/end-date [patch]
// @Security     BearerAuth
func (h *RaffleHandler) HandleUpdateEndDate(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateEndDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, outcome, err := h.svc.UpdateEndDate(ctx.Request.Context(), raffleID, req.EndDate)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleUpdateEndDate -> h.svc.UpdateEndDate", err))
		return
	}

	ctx.JSON(http.StatusOK, response.EndDateResponse{
		Raffle:       raffle,
		Reactivation: outcome,
	})
}

// HandleIncreaseTicketCount godoc
// @Summary      Increase the ticket count of a raffle
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      int                               true  "Raffle ID"
// @Param        request   body      request.UpdateTicketCountRequest  true  "request body"
// @Success      200       {object}  domain.Raffle
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      422       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/ticket-count [patch]
// @Security     BearerAuth
func (h *RaffleHandler) HandleIncreaseTicketCount(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateTicketCountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.IncreaseTicketCount(ctx.Request.Context(), raffleID, req.TotalTickets)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleIncreaseTicketCount -> h.svc.IncreaseTicketCount", err))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleDrawWinner godoc
// @Summary      Draw the winning ticket of a completed raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      int  true  "Raffle ID"
// @Success      200       {object}  domain.Raffle
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      422       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/draw [post]
// @Security     BearerAuth
func (h *RaffleHandler) HandleDrawWinner(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	raffle, err := h.svc.DrawWinner(ctx.Request.Context(), raffleID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleDrawWinner -> h.svc.DrawWinner", err))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleDeleteRaffle godoc
// @Summary      Delete a pending raffle
// @Tags         raffles
// @Param        raffleID  path      int  true  "Raffle ID"
// @Success      204
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      422       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [delete]
// @Security     BearerAuth
func (h *RaffleHandler) HandleDeleteRaffle(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), raffleID); err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleDeleteRaffle -> h.svc.Delete", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
