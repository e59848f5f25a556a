package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

type Err struct {
	HTTPStatusCode int    `json:"-"`
	Err            error  `json:"-"`
	StatusText     string `json:"status"`
	ErrorText      string `json:"error"`
	Reason         string `json:"reason,omitempty"`
	TicketIDs      []uint `json:"ticket_ids,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.StatusText,
			zap.String("requestID", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(code int, err error) *Err {
	return &Err{
		HTTPStatusCode: code,
		Err:            err,
		StatusText:     http.StatusText(code),
		ErrorText:      err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrNotFound(resource, field string, value any) *Err {
	return newErr(http.StatusNotFound, &domain.NotFoundError{Resource: resource, Field: field, Value: value})
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrWrongCredentials(err error) *Err {
	e := newErr(http.StatusUnauthorized, err)
	e.ErrorText = "wrong email or password"

	return e
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrUnprocessable(err error) *Err {
	return newErr(http.StatusUnprocessableEntity, err)
}

// ErrInternalServerError hides the cause from the client; it is only logged.
func ErrInternalServerError(err error) *Err {
	e := newErr(http.StatusInternalServerError, err)
	e.ErrorText = "internal server error"

	return e
}

// FromDomain maps an error kind of the core to its HTTP rendering. op names
// the failing call for the log line of unexpected errors.
func FromDomain(op string, err error) *Err {
	var (
		notFound  *domain.NotFoundError
		forbidden *domain.ForbiddenError
		conflict  *domain.ConflictError
		business  *domain.BusinessError
	)

	switch {
	case errors.As(err, &notFound):
		return newErr(http.StatusNotFound, notFound)
	case errors.As(err, &forbidden):
		return ErrPermissionDenied(forbidden)
	case errors.As(err, &conflict):
		e := ErrConflict(conflict)
		e.Reason = string(conflict.Reason)
		e.TicketIDs = conflict.TicketIDs
		return e
	case errors.As(err, &business):
		e := ErrUnprocessable(business)
		e.TicketIDs = business.TicketIDs
		return e
	default:
		return ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
	}
}
