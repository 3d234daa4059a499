package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the query surface the store consumes: raw Exec plus squirrel-aware
// helpers that build the SQL and scan rows into db-tagged structs.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &pool{p}, nil
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	return p.Exec(ctx, sql, args...)
}

func (p *pool) Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Get(ctx, p.Pool, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Select(ctx, p.Pool, dest, sql, args...)
}
