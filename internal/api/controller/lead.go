package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gfssolutions/solar-api/internal/domain"
	"github.com/gfssolutions/solar-api/internal/domain/dto"
	"github.com/gfssolutions/solar-api/internal/service/form"
)

func (c *Controller) SubmitLead(ctx echo.Context) error {
	payload := new(dto.LeadPayload)
	if err := ctx.Bind(payload); err != nil {
		return err
	}
	if err := ctx.Validate(payload); err != nil {
		return err
	}

	if err := c.leadService.Submit(ctx.Request().Context(), payload); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.StatusResponse{OK: true})
}

// ValidateLeadStep lets the UI shell gate its step transitions with the
// same predicates the state machine enforces.
func (c *Controller) ValidateLeadStep(ctx echo.Context) error {
	req := new(dto.StepValidationRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	data := form.Data{
		Nome:       req.Data.Nome,
		Cognome:    req.Data.Cognome,
		Abitazione: req.Data.Abitazione,
		Tipologia:  req.Data.Tipologia,
		Consumi:    req.Data.Consumi,
		Bolletta:   req.Data.Bolletta,
		KW:         req.Data.KW,
		Email:      req.Data.Email,
		Telefono:   req.Data.Telefono,
	}

	missing := form.MissingFields(form.State(req.Step), data)
	resp := dto.StepValidationResponse{Valid: len(missing) == 0}
	for _, f := range missing {
		resp.Missing = append(resp.Missing, string(f))
	}

	return ctx.JSON(http.StatusOK, resp)
}
