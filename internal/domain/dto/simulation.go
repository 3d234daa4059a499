package dto

import (
	"math"

	"github.com/gfssolutions/solar-api/internal/domain"
)

type SimulationRequest struct {
	Profile ProfilePayload `json:"profile"`
	Input   InputPayload   `json:"input"`
}

type ProfilePayload struct {
	FloorAreaM2 float64 `json:"floor_area_m2" validate:"gte=0"`
	Occupants   int     `json:"occupants" validate:"gte=0"`
	Zone        string  `json:"zone"`
	Dwelling    string  `json:"dwelling"`
}

type InputPayload struct {
	ManualConsumptionKWh float64 `json:"manual_consumption_kwh" validate:"gte=0"`
	UseManualConsumption bool    `json:"use_manual_consumption"`
	UnitPrice            float64 `json:"unit_price" validate:"gte=0"`
	InflationPct         float64 `json:"inflation_pct" validate:"gte=0,lte=100"`
	CapacityKW           float64 `json:"capacity_kw" validate:"gte=0"`
	SystemCost           float64 `json:"system_cost" validate:"gte=0"`
	BatteryCapacityKWh   float64 `json:"battery_capacity_kwh" validate:"gte=0"`
	BatteryCost          float64 `json:"battery_cost" validate:"gte=0"`
	IncentiveEnabled     bool    `json:"incentive_enabled"`
	FinancingMonths      int     `json:"financing_months" validate:"gte=0"`
}

func (p ProfilePayload) ToProfile() domain.HouseholdProfile {
	return domain.HouseholdProfile{
		FloorAreaM2: p.FloorAreaM2,
		Occupants:   p.Occupants,
		Zone:        domain.ClimateZone(p.Zone),
		Dwelling:    domain.DwellingType(p.Dwelling),
	}
}

func (p InputPayload) ToInput() domain.SimulationInput {
	return domain.SimulationInput{
		ManualConsumptionKWh: p.ManualConsumptionKWh,
		UseManualConsumption: p.UseManualConsumption,
		UnitPrice:            p.UnitPrice,
		InflationPct:         p.InflationPct,
		CapacityKW:           p.CapacityKW,
		SystemCost:           p.SystemCost,
		BatteryCapacityKWh:   p.BatteryCapacityKWh,
		BatteryCost:          p.BatteryCost,
		IncentiveEnabled:     p.IncentiveEnabled,
		FinancingMonths:      p.FinancingMonths,
	}
}

// ScenarioPayload is the wire form of a scenario. An infinite payback is
// rendered as null rather than breaking JSON encoding.
type ScenarioPayload struct {
	WithBattery         bool                      `json:"with_battery"`
	NetCost             float64                   `json:"net_cost"`
	AnnualSavings       float64                   `json:"annual_savings"`
	AnnualSavingsPct    float64                   `json:"annual_savings_pct"`
	PaybackYears        *float64                  `json:"payback_years"`
	ROIPct              float64                   `json:"roi_pct"`
	CumulativeSavings10 float64                   `json:"cumulative_savings_10"`
	CumulativeSavings20 float64                   `json:"cumulative_savings_20"`
	CumulativeSavings25 float64                   `json:"cumulative_savings_25"`
	MonthlyInstallment  float64                   `json:"monthly_installment,omitempty"`
	Rating              domain.Rating             `json:"rating"`
	Years               []domain.YearlyProjection `json:"years"`
}

func NewScenarioPayload(r domain.ScenarioResult) ScenarioPayload {
	payload := ScenarioPayload{
		WithBattery:         r.WithBattery,
		NetCost:             r.NetCost,
		AnnualSavings:       r.AnnualSavings,
		AnnualSavingsPct:    r.AnnualSavingsPct,
		ROIPct:              r.ROIPct,
		CumulativeSavings10: r.CumulativeSavings10,
		CumulativeSavings20: r.CumulativeSavings20,
		CumulativeSavings25: r.CumulativeSavings25,
		MonthlyInstallment:  r.MonthlyInstallment,
		Rating:              r.Rating,
		Years:               r.Years,
	}
	if !math.IsInf(r.PaybackYears, 1) {
		payback := r.PaybackYears
		payload.PaybackYears = &payback
	}
	return payload
}

type SimulationResponse struct {
	WithoutBattery ScenarioPayload `json:"without_battery"`
	WithBattery    ScenarioPayload `json:"with_battery"`
}

type QuickEstimateRequest struct {
	MonthlyBill float64 `json:"monthly_bill" validate:"required,gt=0"`
}
