package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gfssolutions/solar-api/internal/domain/dto"
)

// Simulate evaluates both battery configurations so the UI can render the
// comparison without a second round trip.
func (c *Controller) Simulate(ctx echo.Context) error {
	req := new(dto.SimulationRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	profile := req.Profile.ToProfile()
	input := req.Input.ToInput()

	resp := dto.SimulationResponse{
		WithoutBattery: dto.NewScenarioPayload(c.simulationService.Evaluate(profile, input, false)),
		WithBattery:    dto.NewScenarioPayload(c.simulationService.Evaluate(profile, input, true)),
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) QuickEstimate(ctx echo.Context) error {
	req := new(dto.QuickEstimateRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.simulationService.QuickEstimate(req.MonthlyBill))
}
