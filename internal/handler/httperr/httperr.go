package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// Checked in order; the first match wins.
var mappings = []mapping{
	{reservation.ErrEmptySelection, http.StatusUnprocessableEntity, "No dates selected"},
	{reservation.ErrInvalidDateSelection, http.StatusUnprocessableEntity, "Invalid date selection"},
	{reservation.ErrInvalidTransition, http.StatusUnprocessableEntity, "Invalid status transition"},
	{errs.ErrRenterNotAuthenticated, http.StatusUnauthorized, "Authentication required"},
	{reservation.ErrNotAuthorized, http.StatusForbidden, "Not allowed"},
	{errs.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrDateConflict, http.StatusConflict, "Dates already reserved"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused with a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
}

// AbortWithDomainError maps err onto the HTTP error taxonomy. Anything
// unrecognised, including store failures, becomes a 500.
func AbortWithDomainError(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.msg, detailFor(err))
			return
		}
	}
	if errs.Is(err, errs.ErrDatabaseOperationFailed) || errs.Is(err, errs.ErrIdempotencyCheckFailed) {
		slog.Error("upstream failure", "path", c.Request.URL.Path, "error", err.Error())
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// AbortWithBindError reports request binding failures with per-field details.
func AbortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func detailFor(err error) any {
	var dateErr *reservation.InvalidDateError
	if errs.As(err, &dateErr) {
		return gin.H{"date": dateErr.Date.String(), "reason": string(dateErr.Reason)}
	}
	var transErr *reservation.InvalidTransitionError
	if errs.As(err, &transErr) {
		return gin.H{"from": string(transErr.From), "to": string(transErr.To)}
	}
	return nil
}
