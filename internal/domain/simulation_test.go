package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatedAnnualConsumption(t *testing.T) {
	profile := HouseholdProfile{FloorAreaM2: 90, Occupants: 3}
	assert.Equal(t, 90*35+3*500.0, profile.EstimatedAnnualConsumptionKWh())

	// tiny dwellings are floored so the model stays meaningful
	small := HouseholdProfile{FloorAreaM2: 10, Occupants: 0}
	assert.Equal(t, 1200.0, small.EstimatedAnnualConsumptionKWh())
}

func TestEffectiveConsumptionOverride(t *testing.T) {
	profile := HouseholdProfile{FloorAreaM2: 90, Occupants: 3}

	manual := SimulationInput{UseManualConsumption: true, ManualConsumptionKWh: 2500}
	assert.Equal(t, 2500.0, manual.EffectiveConsumptionKWh(profile))

	// a non-positive manual value falls back to the estimate
	zeroManual := SimulationInput{UseManualConsumption: true, ManualConsumptionKWh: 0}
	assert.Equal(t, profile.EstimatedAnnualConsumptionKWh(), zeroManual.EffectiveConsumptionKWh(profile))

	disabled := SimulationInput{UseManualConsumption: false, ManualConsumptionKWh: 2500}
	assert.Equal(t, profile.EstimatedAnnualConsumptionKWh(), disabled.EffectiveConsumptionKWh(profile))
}

func TestNewNullString(t *testing.T) {
	assert.Nil(t, NewNullString(""))
	assert.Nil(t, NewNullString("   "))

	v := NewNullString("4.5")
	assert.NotNil(t, v)
	assert.Equal(t, "4.5", *v)
}
