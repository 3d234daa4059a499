package simulation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/gfssolutions/solar-api/internal/domain"
)

// Model constants. Zone coefficients are annual yields in kWh per kW
// installed; the remaining values are fixed assumptions of the offer.
const (
	horizonYears         = 25
	panelDegradationRate = 0.005 // output loss per year
	feedInTariff         = 0.10  // €/kWh credited on exported production

	selfConsumptionWithBattery = 0.75
	selfConsumptionNoBattery   = 0.35

	incentiveDiscount       = 0.5
	fallbackZoneCoefficient = 1100.0

	quickSavingsRate = 0.85
	quickBillMin     = 80.0
	quickBillMax     = 1200.0
)

var zoneCoefficients = map[domain.ClimateZone]float64{
	domain.ZoneNorth:  1100,
	domain.ZoneCenter: 1300,
	domain.ZoneSouth:  1500,
}

// Service evaluates the financial projection. It is pure: no I/O, no state,
// identical inputs produce identical results.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Evaluate produces the 25-year comparison between staying on the grid and
// installing the system, for one battery configuration. Inputs are taken as
// already clamped by the caller; degenerate values degrade to boundary
// results (zero savings, infinite payback) instead of failing.
func (s *Service) Evaluate(profile domain.HouseholdProfile, input domain.SimulationInput, withBattery bool) domain.ScenarioResult {
	consumption := input.EffectiveConsumptionKWh(profile)
	coeff := zoneCoefficient(profile.Zone)

	ratio := selfConsumptionNoBattery
	if withBattery {
		ratio = selfConsumptionWithBattery
	}

	netCost := input.SystemCost
	if withBattery {
		netCost += input.BatteryCost
	}
	if input.IncentiveEnabled {
		netCost *= incentiveDiscount
	}

	var (
		years                        = make([]domain.YearlyProjection, 0, horizonYears)
		totalSavings                 float64
		total10, total20             float64
		firstTraditional, firstSolar float64
	)

	for year := 1; year <= horizonYears; year++ {
		price := input.UnitPrice * math.Pow(1+input.InflationPct/100, float64(year-1))
		production := input.CapacityKW * coeff * math.Pow(1-panelDegradationRate, float64(year-1))

		autoconsumed := math.Min(consumption, production*ratio)
		gridCost := (consumption - autoconsumed) * price
		feedInRevenue := math.Max(production-autoconsumed, 0) * feedInTariff
		solarCost := math.Max(gridCost-feedInRevenue, 0)
		traditionalCost := consumption * price

		totalSavings += traditionalCost - solarCost
		if year == 1 {
			firstTraditional, firstSolar = traditionalCost, solarCost
		}
		if year == 10 {
			total10 = totalSavings
		}
		if year == 20 {
			total20 = totalSavings
		}

		years = append(years, domain.YearlyProjection{
			Year:            year,
			TraditionalCost: roundCents(traditionalCost),
			SolarCost:       roundCents(solarCost),
			Savings:         roundCents(traditionalCost - solarCost),
		})
	}

	annualSavings := firstTraditional - firstSolar

	var savingsPct float64
	if firstTraditional > 0 {
		savingsPct = clamp(annualSavings/firstTraditional*100, 0, 100)
	}

	payback := math.Inf(1)
	if annualSavings > 0 {
		payback = netCost / annualSavings
	}

	var roi float64
	if netCost > 0 {
		roi = (totalSavings - netCost) / netCost * 100
	}

	result := domain.ScenarioResult{
		WithBattery:         withBattery,
		NetCost:             roundCents(netCost),
		AnnualSavings:       roundCents(annualSavings),
		AnnualSavingsPct:    roundTenth(savingsPct),
		PaybackYears:        payback,
		ROIPct:              roundTenth(roi),
		CumulativeSavings10: roundCents(total10),
		CumulativeSavings20: roundCents(total20),
		CumulativeSavings25: roundCents(totalSavings),
		Rating:              rating(payback),
		Years:               years,
	}

	if input.FinancingMonths > 0 {
		result.MonthlyInstallment = roundCents(netCost / float64(input.FinancingMonths))
	}

	return result
}

// QuickEstimate applies the fixed landing-page savings rate to a monthly
// bill, clamped to the simulator's slider range.
func (s *Service) QuickEstimate(monthlyBill float64) domain.QuickEstimate {
	bill := clamp(monthlyBill, quickBillMin, quickBillMax)
	annualCost := bill * 12
	annualSavings := math.Round(annualCost * quickSavingsRate)

	return domain.QuickEstimate{
		MonthlyBill:    bill,
		AnnualCost:     annualCost,
		AnnualSavings:  annualSavings,
		NewAnnualCost:  math.Max(annualCost-annualSavings, 0),
		MonthlySavings: math.Round(annualSavings / 12),
		TenYearSavings: annualSavings * 10,
	}
}

func zoneCoefficient(zone domain.ClimateZone) float64 {
	if coeff, ok := zoneCoefficients[zone]; ok {
		return coeff
	}
	return fallbackZoneCoefficient
}

// rating: the payback thresholds the sales team quotes. A non-finite
// payback is worse than any finite one.
func rating(payback float64) domain.Rating {
	switch {
	case payback <= 7:
		return domain.RatingExcellent
	case payback <= 11:
		return domain.RatingGood
	default:
		return domain.RatingPoor
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func roundCents(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func roundTenth(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
