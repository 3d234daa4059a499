package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledMachine() Machine {
	return NewMachine().
		WithField(FieldNome, "Mario").
		WithField(FieldCognome, "Rossi").
		WithField(FieldTipologia, "Fotovoltaico").
		WithField(FieldEmail, "mario@example.com")
}

func TestWalkThroughAllSteps(t *testing.T) {
	m := filledMachine()
	require.Equal(t, StateStep1, m.State())

	var err error
	for _, want := range []State{StateStep2, StateStep3, StateStep4} {
		m, err = m.Next()
		require.NoError(t, err)
		assert.Equal(t, want, m.State())
	}

	m, err = m.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, m.State())

	m, err = m.Finish(nil)
	require.NoError(t, err)
	assert.Equal(t, StateSent, m.State())
}

func TestFinishWithErrorFails(t *testing.T) {
	m := filledMachine()
	for i := 0; i < 3; i++ {
		m, _ = m.Next()
	}
	m, _ = m.Submit()

	m, err := m.Finish(errors.New("notification failed"))
	require.NoError(t, err)
	assert.Equal(t, StateFailed, m.State())
}

func TestNextBlockedByIncompleteStep(t *testing.T) {
	m := NewMachine()

	_, err := m.Next()
	assert.ErrorIs(t, err, ErrIncompleteStep)

	m = m.WithField(FieldNome, "Mario")
	_, err = m.Next()
	assert.ErrorIs(t, err, ErrIncompleteStep, "surname is still missing")
}

func TestPrevBoundaries(t *testing.T) {
	m := NewMachine()
	_, err := m.Prev()
	assert.ErrorIs(t, err, ErrBadTransition)

	m = filledMachine()
	m, _ = m.Next()
	m, err = m.Prev()
	require.NoError(t, err)
	assert.Equal(t, StateStep1, m.State())
}

func TestSubmitRequiresEveryPredicate(t *testing.T) {
	// reach step4 legitimately, then blank a field from an earlier step
	m := filledMachine()
	for i := 0; i < 3; i++ {
		m, _ = m.Next()
	}
	m = m.WithField(FieldTipologia, "")

	_, err := m.Submit()
	assert.ErrorIs(t, err, ErrIncompleteStep)
}

func TestStep4ContactRules(t *testing.T) {
	base := Data{Nome: "Mario", Cognome: "Rossi", Tipologia: "Fotovoltaico"}

	phoneOnly := base
	phoneOnly.Telefono = "3331234567"
	assert.True(t, StepValid(StateStep4, phoneOnly))

	emailOnly := base
	emailOnly.Email = "mario@example.com"
	assert.True(t, StepValid(StateStep4, emailOnly))

	noContact := base
	assert.False(t, StepValid(StateStep4, noContact))
	assert.ElementsMatch(t, []Field{FieldEmail, FieldTelefono}, MissingFields(StateStep4, noContact))

	badEmail := base
	badEmail.Email = "not-an-address"
	assert.False(t, StepValid(StateStep4, badEmail))
}

func TestStep3NeverBlocks(t *testing.T) {
	assert.True(t, StepValid(StateStep3, Data{}))
}

func TestEditsAreImmutable(t *testing.T) {
	m := NewMachine()
	edited := m.WithField(FieldNome, "Mario")

	assert.Empty(t, m.Data().Nome)
	assert.Equal(t, "Mario", edited.Data().Nome)
}

func TestEditsIgnoredAfterSubmission(t *testing.T) {
	m := filledMachine()
	for i := 0; i < 3; i++ {
		m, _ = m.Next()
	}
	m, _ = m.Submit()

	edited := m.WithField(FieldNome, "Luigi")
	assert.Equal(t, "Mario", edited.Data().Nome)
}
