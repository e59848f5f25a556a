package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/service"
)

type OrderService interface {
	Apply(ctx context.Context, raffleID uint, event service.OrderEvent, cartID *uint, ticketIDs []uint) (domain.RaffleStatistics, error)
}

// OrderHandler receives lifecycle events from the order system.
type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc: svc,
	}
}

// HandleOrderEvent godoc
// @Summary      Apply an order lifecycle event to a raffle
// @Description  CREATED only counts the order. COMPLETED sells the reserved tickets, CANCELLED and UNPAID release them, REFUNDED makes sold tickets available again.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        raffleID  path      int                         true  "Raffle ID"
// @Param        request   body      request.OrderEventRequest   true  "request body"
// @Success      200       {object}  domain.RaffleStatistics
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      422       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/order-events [post]
// @Security     BearerAuth
func (h *OrderHandler) HandleOrderEvent(ctx *gin.Context) {
	raffleID, respErr := parseID(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.OrderEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stats, err := h.svc.Apply(ctx.Request.Context(), raffleID, service.OrderEvent(req.Type), req.CartID, req.TicketIDs)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleOrderEvent -> h.svc.Apply", err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
