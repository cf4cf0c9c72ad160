package model

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var linksRows = "id, short_code, original_url, is_active, expires_at, created_at, updated_at"

type (
	// LinksModel gives the resolver typed access to the links table. The
	// table is owned by the link-management service; the resolver only
	// reads it, the remaining methods exist for tooling and tests.
	LinksModel interface {
		Insert(ctx context.Context, data *Links) (sql.Result, error)
		FindOne(ctx context.Context, id string) (*Links, error)
		FindOneByShortCode(ctx context.Context, shortCode string) (*Links, error)
		FindOneActiveByShortCode(ctx context.Context, shortCode string) (*Links, error)
		Update(ctx context.Context, data *Links) error
		Delete(ctx context.Context, id string) error
	}

	defaultLinksModel struct {
		conn  sqlx.SqlConn
		table string
	}

	Links struct {
		Id          string       `db:"id"`
		ShortCode   string       `db:"short_code"`
		OriginalUrl string       `db:"original_url"`
		IsActive    bool         `db:"is_active"`
		ExpiresAt   sql.NullTime `db:"expires_at"`
		CreatedAt   time.Time    `db:"created_at"`
		UpdatedAt   time.Time    `db:"updated_at"`
	}
)

// NewLinksModel returns a model for the database table.
func NewLinksModel(conn sqlx.SqlConn) LinksModel {
	return &defaultLinksModel{
		conn:  conn,
		table: `"links"`,
	}
}

func (m *defaultLinksModel) Insert(ctx context.Context, data *Links) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (%s) values ($1, $2, $3, $4, $5, $6, $7)", m.table, linksRows)
	return m.conn.ExecCtx(ctx, query, data.Id, data.ShortCode, data.OriginalUrl, data.IsActive,
		data.ExpiresAt, data.CreatedAt, data.UpdatedAt)
}

func (m *defaultLinksModel) FindOne(ctx context.Context, id string) (*Links, error) {
	query := fmt.Sprintf("select %s from %s where id = $1 limit 1", linksRows, m.table)
	var resp Links
	err := m.conn.QueryRowCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultLinksModel) FindOneByShortCode(ctx context.Context, shortCode string) (*Links, error) {
	query := fmt.Sprintf("select %s from %s where short_code = $1 limit 1", linksRows, m.table)
	var resp Links
	err := m.conn.QueryRowCtx(ctx, &resp, query, shortCode)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// FindOneActiveByShortCode is the hot-path lookup. Inactive rows are
// indistinguishable from missing rows on purpose: both resolve as not
// found. expires_at is deliberately not part of the predicate;
// deactivation of expired links is the link-management service's job.
func (m *defaultLinksModel) FindOneActiveByShortCode(ctx context.Context, shortCode string) (*Links, error) {
	query := fmt.Sprintf("select %s from %s where short_code = $1 and is_active = true limit 1", linksRows, m.table)
	var resp Links
	err := m.conn.QueryRowCtx(ctx, &resp, query, shortCode)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultLinksModel) Update(ctx context.Context, data *Links) error {
	query := fmt.Sprintf("update %s set short_code = $1, original_url = $2, is_active = $3, expires_at = $4, updated_at = $5 where id = $6", m.table)
	_, err := m.conn.ExecCtx(ctx, query, data.ShortCode, data.OriginalUrl, data.IsActive,
		data.ExpiresAt, time.Now(), data.Id)
	return err
}

func (m *defaultLinksModel) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("delete from %s where id = $1", m.table)
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}
