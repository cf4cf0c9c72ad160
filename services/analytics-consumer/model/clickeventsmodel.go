package model

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var clickEventsRows = "id, short_code, original_url, clicked_at, user_agent, ip_address, referer, country_code, device_type, traffic_source, received_at"

type (
	// ClickEventsModel is the event store adapter. Click documents are
	// written once and never mutated or deleted here, so the interface
	// carries no update or delete methods.
	ClickEventsModel interface {
		Insert(ctx context.Context, data *ClickEvents) (sql.Result, error)
		FindOne(ctx context.Context, id string) (*ClickEvents, error)
		CountByShortCode(ctx context.Context, shortCode string) (int64, error)
	}

	defaultClickEventsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	ClickEvents struct {
		Id            string    `db:"id"`
		ShortCode     string    `db:"short_code"`
		OriginalUrl   string    `db:"original_url"`
		ClickedAt     time.Time `db:"clicked_at"`
		UserAgent     string    `db:"user_agent"`
		IpAddress     string    `db:"ip_address"`
		Referer       string    `db:"referer"`
		CountryCode   string    `db:"country_code"`
		DeviceType    string    `db:"device_type"`
		TrafficSource string    `db:"traffic_source"`
		ReceivedAt    time.Time `db:"received_at"`
	}
)

// NewClickEventsModel returns a model for the database table.
func NewClickEventsModel(conn sqlx.SqlConn) ClickEventsModel {
	return &defaultClickEventsModel{
		conn:  conn,
		table: `"click_events"`,
	}
}

// Insert writes a click document keyed by id. ON CONFLICT DO NOTHING
// makes the write idempotent: a redelivered message with the same id
// converges to the single document already stored.
func (m *defaultClickEventsModel) Insert(ctx context.Context, data *ClickEvents) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (id, short_code, original_url, clicked_at, user_agent, ip_address, referer, country_code, device_type, traffic_source) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) on conflict (id) do nothing", m.table)
	return m.conn.ExecCtx(ctx, query, data.Id, data.ShortCode, data.OriginalUrl, data.ClickedAt,
		data.UserAgent, data.IpAddress, data.Referer, data.CountryCode, data.DeviceType, data.TrafficSource)
}

func (m *defaultClickEventsModel) FindOne(ctx context.Context, id string) (*ClickEvents, error) {
	query := fmt.Sprintf("select %s from %s where id = $1 limit 1", clickEventsRows, m.table)
	var resp ClickEvents
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

// CountByShortCode returns the number of stored clicks for a short code.
func (m *defaultClickEventsModel) CountByShortCode(ctx context.Context, shortCode string) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where short_code = $1", m.table)
	var count int64
	err := m.conn.QueryRowCtx(ctx, &count, query, shortCode)
	if err != nil {
		return 0, err
	}
	return count, nil
}
