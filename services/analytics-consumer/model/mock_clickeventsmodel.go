package model

import (
	"context"
	"database/sql"
)

// MockClickEventsModel is a test mock for the ClickEventsModel interface.
type MockClickEventsModel struct {
	InsertFunc           func(ctx context.Context, data *ClickEvents) (sql.Result, error)
	FindOneFunc          func(ctx context.Context, id string) (*ClickEvents, error)
	CountByShortCodeFunc func(ctx context.Context, shortCode string) (int64, error)
}

// Ensure MockClickEventsModel implements ClickEventsModel interface
var _ ClickEventsModel = (*MockClickEventsModel)(nil)

func (m *MockClickEventsModel) Insert(ctx context.Context, data *ClickEvents) (sql.Result, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, data)
	}
	panic("MockClickEventsModel.InsertFunc not set")
}

func (m *MockClickEventsModel) FindOne(ctx context.Context, id string) (*ClickEvents, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, id)
	}
	panic("MockClickEventsModel.FindOneFunc not set")
}

func (m *MockClickEventsModel) CountByShortCode(ctx context.Context, shortCode string) (int64, error) {
	if m.CountByShortCodeFunc != nil {
		return m.CountByShortCodeFunc(ctx, shortCode)
	}
	panic("MockClickEventsModel.CountByShortCodeFunc not set")
}
