package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/api/middleware"
	"github.com/vietanh2810/raffle-api/internal/domain"
)

var errNoCaller = errors.New("no authenticated user")

type UserService interface {
	GetProfile(ctx context.Context, callerID, id uint) (domain.UserProfile, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetUser godoc
// @Summary      Get the caller's profile with their active cart
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  domain.UserProfile
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	caller, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	userID, respErr := parseID(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	profile, err := h.svc.GetProfile(ctx.Request.Context(), caller, userID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("HandleGetUser -> h.svc.GetProfile", err))
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func callerID(ctx *gin.Context) (uint, *response.Err) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return 0, response.ErrUnauthorized(errNoCaller)
	}

	return id, nil
}

func parseID(ctx *gin.Context, param string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s: %q", param, ctx.Param(param)))
	}

	return uint(id), nil
}
