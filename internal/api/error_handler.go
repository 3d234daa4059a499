package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gfssolutions/solar-api/internal/domain"
	"github.com/gfssolutions/solar-api/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError
	for walk := err; walk != nil; walk = errors.Unwrap(walk) {
		if ce, ok := walk.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := walk.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
			break
		}
	}

	_ = c.JSON(code, domain.StatusResponse{
		OK:    false,
		Error: msg,
	})
}
