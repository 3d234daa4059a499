package store

import (
	"context"

	"github.com/gfssolutions/solar-api/internal/domain"
	"github.com/gfssolutions/solar-api/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateLead(ctx context.Context, lead *domain.Lead) error
	ListLeads(ctx context.Context) ([]*domain.Lead, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
