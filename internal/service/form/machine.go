// Package form models the multi-step quote form as an explicit state
// machine. Each step carries a pure validation predicate over the
// accumulated record; a transition forward is only permitted when the
// current step's predicate holds.
package form

import (
	"errors"
	"net/mail"
	"strings"
)

type State int

const (
	StateStep1 State = iota + 1 // identity
	StateStep2                  // housing
	StateStep3                  // consumption
	StateStep4                  // contact
	StateSubmitting
	StateSent
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStep1:
		return "step1"
	case StateStep2:
		return "step2"
	case StateStep3:
		return "step3"
	case StateStep4:
		return "step4"
	case StateSubmitting:
		return "submitting"
	case StateSent:
		return "sent"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Field string

const (
	FieldNome       Field = "nome"
	FieldCognome    Field = "cognome"
	FieldAbitazione Field = "abitazione"
	FieldTipologia  Field = "tipologia"
	FieldConsumi    Field = "consumi"
	FieldBolletta   Field = "bolletta"
	FieldKW         Field = "kw"
	FieldEmail      Field = "email"
	FieldTelefono   Field = "telefono"
)

// Data is the accumulated form record. It is treated as immutable: every
// edit produces a new value instead of mutating shared state.
type Data struct {
	Nome       string
	Cognome    string
	Abitazione string
	Tipologia  string
	Consumi    string
	Bolletta   string
	KW         string
	Email      string
	Telefono   string
}

var (
	ErrIncompleteStep = errors.New("current step is not complete")
	ErrBadTransition  = errors.New("transition not allowed from current state")
)

// Machine is a value type; transitions return a new Machine.
type Machine struct {
	state State
	data  Data
}

func NewMachine() Machine {
	return Machine{state: StateStep1}
}

func (m Machine) State() State { return m.state }
func (m Machine) Data() Data   { return m.data }

// WithField records an edit. Edits are only meaningful while the form is
// being filled in; in any other state the machine is returned unchanged.
func (m Machine) WithField(f Field, v string) Machine {
	if m.state < StateStep1 || m.state > StateStep4 {
		return m
	}

	switch f {
	case FieldNome:
		m.data.Nome = v
	case FieldCognome:
		m.data.Cognome = v
	case FieldAbitazione:
		m.data.Abitazione = v
	case FieldTipologia:
		m.data.Tipologia = v
	case FieldConsumi:
		m.data.Consumi = v
	case FieldBolletta:
		m.data.Bolletta = v
	case FieldKW:
		m.data.KW = v
	case FieldEmail:
		m.data.Email = v
	case FieldTelefono:
		m.data.Telefono = v
	}

	return m
}

func (m Machine) Next() (Machine, error) {
	if m.state < StateStep1 || m.state >= StateStep4 {
		return m, ErrBadTransition
	}
	if !StepValid(m.state, m.data) {
		return m, ErrIncompleteStep
	}

	m.state++
	return m, nil
}

func (m Machine) Prev() (Machine, error) {
	if m.state <= StateStep1 || m.state > StateStep4 {
		return m, ErrBadTransition
	}

	m.state--
	return m, nil
}

// Submit moves Step4 → Submitting. Every step's predicate must hold over
// the final record, not just the last one.
func (m Machine) Submit() (Machine, error) {
	if m.state != StateStep4 {
		return m, ErrBadTransition
	}
	for step := StateStep1; step <= StateStep4; step++ {
		if !StepValid(step, m.data) {
			return m, ErrIncompleteStep
		}
	}

	m.state = StateSubmitting
	return m, nil
}

// Finish resolves the submission outcome.
func (m Machine) Finish(err error) (Machine, error) {
	if m.state != StateSubmitting {
		return m, ErrBadTransition
	}

	if err != nil {
		m.state = StateFailed
	} else {
		m.state = StateSent
	}
	return m, nil
}

// StepValid is the pure per-step predicate.
func StepValid(step State, d Data) bool {
	return len(MissingFields(step, d)) == 0
}

// MissingFields names what blocks a step. Step3 collects free-text
// consumption details and never blocks; step4 requires a way to reach the
// visitor back and rejects a malformed email when one was typed.
func MissingFields(step State, d Data) []Field {
	var missing []Field

	switch step {
	case StateStep1:
		if blank(d.Nome) {
			missing = append(missing, FieldNome)
		}
		if blank(d.Cognome) {
			missing = append(missing, FieldCognome)
		}
	case StateStep2:
		if blank(d.Tipologia) {
			missing = append(missing, FieldTipologia)
		}
	case StateStep3:
	case StateStep4:
		if !blank(d.Email) {
			if _, err := mail.ParseAddress(strings.TrimSpace(d.Email)); err != nil {
				missing = append(missing, FieldEmail)
			}
		}
		if blank(d.Email) && blank(d.Telefono) {
			missing = append(missing, FieldEmail, FieldTelefono)
		}
	}

	return missing
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
