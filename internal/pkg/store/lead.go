package store

import (
	"context"
	"fmt"

	"github.com/gfssolutions/solar-api/internal/domain"
	"github.com/gfssolutions/solar-api/internal/pkg/logger"
)

var leadColumns = []string{
	"id", "nome", "cognome", "abitazione", "consumi", "bolletta",
	"tipologia", "kw", "email", "telefono", "created_at",
}

// CreateLead writes one submission. Create-only: there is no update or
// delete path for leads anywhere in the service.
func (s *store) CreateLead(ctx context.Context, lead *domain.Lead) error {
	query := builder().Insert(tableLeads).
		Columns(leadColumns...).
		Values(
			lead.ID, lead.Nome, lead.Cognome, lead.Abitazione, lead.Consumi,
			lead.Bolletta, lead.Tipologia, lead.KW, lead.Email, lead.Telefono,
			lead.CreatedAt,
		)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "insertLead: %s", err.Error())
		return fmt.Errorf("insertLead: %w", wrapErr(err))
	}

	return nil
}

func (s *store) ListLeads(ctx context.Context) ([]*domain.Lead, error) {
	query := builder().Select(leadColumns...).
		From(tableLeads).
		OrderBy("created_at desc")

	var selected []*domain.Lead
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
