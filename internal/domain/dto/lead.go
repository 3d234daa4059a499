package dto

import (
	"time"

	"github.com/gfssolutions/solar-api/internal/domain"
)

// LeadPayload is the typed parse boundary for the form submission. Field
// names match the site form; everything is a string and only name and
// surname are mandatory.
type LeadPayload struct {
	Nome       string `json:"nome" validate:"required"`
	Cognome    string `json:"cognome" validate:"required"`
	Abitazione string `json:"abitazione"`
	Consumi    string `json:"consumi"`
	Bolletta   string `json:"bolletta"`
	Tipologia  string `json:"tipologia"`
	KW         string `json:"kw"`
	Email      string `json:"email" validate:"omitempty,email"`
	Telefono   string `json:"telefono"`
}

func (p *LeadPayload) ToLead(id string, createdAt time.Time) *domain.Lead {
	return &domain.Lead{
		ID:         id,
		Nome:       p.Nome,
		Cognome:    p.Cognome,
		Abitazione: domain.NewNullString(p.Abitazione),
		Consumi:    domain.NewNullString(p.Consumi),
		Bolletta:   domain.NewNullString(p.Bolletta),
		Tipologia:  domain.NewNullString(p.Tipologia),
		KW:         domain.NewNullString(p.KW),
		Email:      domain.NewNullString(p.Email),
		Telefono:   domain.NewNullString(p.Telefono),
		CreatedAt:  createdAt,
	}
}

// FormDataPayload mirrors LeadPayload without validation tags: a step
// check must accept records that are still incomplete.
type FormDataPayload struct {
	Nome       string `json:"nome"`
	Cognome    string `json:"cognome"`
	Abitazione string `json:"abitazione"`
	Consumi    string `json:"consumi"`
	Bolletta   string `json:"bolletta"`
	Tipologia  string `json:"tipologia"`
	KW         string `json:"kw"`
	Email      string `json:"email"`
	Telefono   string `json:"telefono"`
}

// StepValidationRequest asks whether one step of the quote form may be
// left, given everything typed so far.
type StepValidationRequest struct {
	Step int             `json:"step" validate:"required,min=1,max=4"`
	Data FormDataPayload `json:"data"`
}

type StepValidationResponse struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
}
