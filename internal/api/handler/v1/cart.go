package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/domain"
)

type CartService interface {
	CreateCart(ctx context.Context, callerID, associationID uint) (domain.Cart, error)
	GetActive(ctx context.Context, callerID uint) (domain.Cart, error)
	Reserve(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error)
	Release(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error)
}

type CartHandler struct {
	svc CartService
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{
		svc: svc,
	}
}

// HandleCreateCart godoc
// @Summary      Open a new cart
// @Description  Closes the caller's active cart, releasing its tickets, and opens an empty one.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCartRequest  true  "request body"
// @Success      201      {object}  domain.Cart
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /carts [post]
// @Security     BearerAuth
func (h *CartHandler) HandleCreateCart(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cart, err := h.svc.CreateCart(ctx.Request.Context(), userID, req.AssociationID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleCreateCart -> h.svc.CreateCart", err))
		return
	}

	ctx.JSON(http.StatusCreated, cart)
}

// HandleGetActiveCart godoc
// @Summary      Get the caller's active cart
// @Tags         carts
// @Produce      json
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /carts/active [get]
// @Security     BearerAuth
func (h *CartHandler) HandleGetActiveCart(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	cart, err := h.svc.GetActive(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleGetActiveCart -> h.svc.GetActive", err))
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// HandleReserve godoc
// @Summary      Reserve tickets into a cart
// @Description  All requested tickets are reserved or none is.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cartID   path      int                       true  "Cart ID"
// @Param        request  body      request.TicketIDsRequest  true  "request body"
// @Success      200      {object}  domain.Cart
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /carts/{cartID}/reserve [post]
// @Security     BearerAuth
func (h *CartHandler) HandleReserve(ctx *gin.Context) {
	h.handleTickets(ctx, "HandleReserve -> h.svc.Reserve", h.svc.Reserve)
}

// HandleRelease godoc
// @Summary      Release tickets from a cart
// @Description  All requested tickets are released or none is.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cartID   path      int                       true  "Cart ID"
// @Param        request  body      request.TicketIDsRequest  true  "request body"
// @Success      200      {object}  domain.Cart
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /carts/{cartID}/release [post]
// @Security     BearerAuth
func (h *CartHandler) HandleRelease(ctx *gin.Context) {
	h.handleTickets(ctx, "HandleRelease -> h.svc.Release", h.svc.Release)
}

type cartTicketsFunc func(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error)

func (h *CartHandler) handleTickets(ctx *gin.Context, op string, apply cartTicketsFunc) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	cartID, respErr := parseID(ctx, "cartID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.TicketIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cart, err := apply(ctx.Request.Context(), userID, cartID, req.TicketIDs)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(op, err))
		return
	}

	ctx.JSON(http.StatusOK, cart)
}
