package api

import (
	"github.com/labstack/echo/v4"

	"github.com/gfssolutions/solar-api/internal/pkg/constants"
)

// Binder turns any malformed body into a 400 CodedError so duck-typed
// payloads never reach a handler.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return constants.ErrInvalidPayload.WithCause(err)
	}
	return nil
}
