package domain

type ClimateZone string

const (
	ZoneNorth  ClimateZone = "north"
	ZoneCenter ClimateZone = "center"
	ZoneSouth  ClimateZone = "south"
)

// DwellingType is collected for the sales team; it does not enter the model.
type DwellingType string

const (
	DwellingApartment DwellingType = "apartment"
	DwellingTerraced  DwellingType = "terraced"
	DwellingDetached  DwellingType = "detached"
	DwellingRural     DwellingType = "rural"
)

type HouseholdProfile struct {
	FloorAreaM2 float64      `json:"floor_area_m2"`
	Occupants   int          `json:"occupants"`
	Zone        ClimateZone  `json:"zone"`
	Dwelling    DwellingType `json:"dwelling"`
}

// EstimatedAnnualConsumptionKWh derives consumption from dwelling size and
// occupancy, floored at 1200 kWh so tiny inputs still produce a usable model.
func (p HouseholdProfile) EstimatedAnnualConsumptionKWh() float64 {
	estimated := p.FloorAreaM2*35 + float64(p.Occupants)*500
	if estimated < 1200 {
		return 1200
	}
	return estimated
}

type SimulationInput struct {
	ManualConsumptionKWh float64 `json:"manual_consumption_kwh"`
	UseManualConsumption bool    `json:"use_manual_consumption"`
	UnitPrice            float64 `json:"unit_price"`
	InflationPct         float64 `json:"inflation_pct"`
	CapacityKW           float64 `json:"capacity_kw"`
	SystemCost           float64 `json:"system_cost"`
	BatteryCapacityKWh   float64 `json:"battery_capacity_kwh"`
	BatteryCost          float64 `json:"battery_cost"`
	IncentiveEnabled     bool    `json:"incentive_enabled"`
	FinancingMonths      int     `json:"financing_months"`
}

// EffectiveConsumptionKWh applies the override rule: the manual value wins
// when enabled and positive, otherwise the profile estimate is used.
func (in SimulationInput) EffectiveConsumptionKWh(p HouseholdProfile) float64 {
	if in.UseManualConsumption && in.ManualConsumptionKWh > 0 {
		return in.ManualConsumptionKWh
	}
	return p.EstimatedAnnualConsumptionKWh()
}

type YearlyProjection struct {
	Year            int     `json:"year"`
	TraditionalCost float64 `json:"traditional_cost"`
	SolarCost       float64 `json:"solar_cost"`
	Savings         float64 `json:"savings"`
}

type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingPoor      Rating = "poor"
)

// ScenarioResult is the 25-year comparison for one battery configuration.
// PaybackYears is +Inf when year-one savings are not positive; the DTO layer
// serializes that as null.
type ScenarioResult struct {
	WithBattery         bool
	NetCost             float64
	AnnualSavings       float64
	AnnualSavingsPct    float64
	PaybackYears        float64
	ROIPct              float64
	CumulativeSavings10 float64
	CumulativeSavings20 float64
	CumulativeSavings25 float64
	MonthlyInstallment  float64
	Rating              Rating
	Years               []YearlyProjection
}

// QuickEstimate is the landing-page simulator result: a fixed savings rate
// applied to the visitor's monthly bill.
type QuickEstimate struct {
	MonthlyBill    float64 `json:"monthly_bill"`
	AnnualCost     float64 `json:"annual_cost"`
	AnnualSavings  float64 `json:"annual_savings"`
	NewAnnualCost  float64 `json:"new_annual_cost"`
	MonthlySavings float64 `json:"monthly_savings"`
	TenYearSavings float64 `json:"ten_year_savings"`
}
