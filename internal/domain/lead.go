package domain

import (
	"strings"
	"time"
)

// Lead is a single quote request from the site form. Created once,
// never mutated, never deleted. Only name and surname are mandatory;
// the remaining fields are stored as NULL when left blank.
type Lead struct {
	ID         string    `db:"id" json:"id"`
	Nome       string    `db:"nome" json:"nome"`
	Cognome    string    `db:"cognome" json:"cognome"`
	Abitazione *string   `db:"abitazione" json:"abitazione,omitempty"`
	Consumi    *string   `db:"consumi" json:"consumi,omitempty"`
	Bolletta   *string   `db:"bolletta" json:"bolletta,omitempty"`
	Tipologia  *string   `db:"tipologia" json:"tipologia,omitempty"`
	KW         *string   `db:"kw" json:"kw,omitempty"`
	Email      *string   `db:"email" json:"email,omitempty"`
	Telefono   *string   `db:"telefono" json:"telefono,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// NewNullString normalizes a blank submission field to NULL on write.
func NewNullString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
