package api

import (
	"errors"
	"net/http"

	"itemshare/internal/handler/httperr"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondUsecaseError translates marked usecase errors into HTTP statuses.
// An error carrying no known mark falls through as an internal error.
func respondUsecaseError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, commands.ErrBookerNotFound),
		errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, commands.ErrAuthorNotFound),
		errors.Is(err, queries.ErrBookingNotFound),
		errors.Is(err, queries.ErrItemNotFound),
		errors.Is(err, queries.ErrUserNotFound),
		errors.Is(err, queries.ErrRequestNotFound):
		status = http.StatusNotFound
		msg = err.Error()

	case errors.Is(err, commands.ErrNotItemOwner),
		errors.Is(err, commands.ErrItemNotOwned),
		errors.Is(err, queries.ErrBookingAccess):
		status = http.StatusForbidden
		msg = err.Error()

	case errors.Is(err, commands.ErrInvalidPeriod),
		errors.Is(err, commands.ErrItemUnavailable),
		errors.Is(err, commands.ErrCommentNotAllowed),
		errors.Is(err, commands.ErrDomainValidation):
		status = http.StatusBadRequest
		msg = err.Error()

	case errors.Is(err, commands.ErrEmailTaken):
		status = http.StatusConflict
		msg = err.Error()
	}

	httperr.AbortWithError(c, status, err, msg, nil)
}
