package model

import (
	"context"
	"database/sql"
)

// MockLinksModel is a test mock for the LinksModel interface.
type MockLinksModel struct {
	InsertFunc                   func(ctx context.Context, data *Links) (sql.Result, error)
	FindOneFunc                  func(ctx context.Context, id string) (*Links, error)
	FindOneByShortCodeFunc       func(ctx context.Context, shortCode string) (*Links, error)
	FindOneActiveByShortCodeFunc func(ctx context.Context, shortCode string) (*Links, error)
	UpdateFunc                   func(ctx context.Context, data *Links) error
	DeleteFunc                   func(ctx context.Context, id string) error
}

// Ensure MockLinksModel implements LinksModel interface
var _ LinksModel = (*MockLinksModel)(nil)

func (m *MockLinksModel) Insert(ctx context.Context, data *Links) (sql.Result, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, data)
	}
	panic("MockLinksModel.InsertFunc not set")
}

func (m *MockLinksModel) FindOne(ctx context.Context, id string) (*Links, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, id)
	}
	panic("MockLinksModel.FindOneFunc not set")
}

func (m *MockLinksModel) FindOneByShortCode(ctx context.Context, shortCode string) (*Links, error) {
	if m.FindOneByShortCodeFunc != nil {
		return m.FindOneByShortCodeFunc(ctx, shortCode)
	}
	panic("MockLinksModel.FindOneByShortCodeFunc not set")
}

func (m *MockLinksModel) FindOneActiveByShortCode(ctx context.Context, shortCode string) (*Links, error) {
	if m.FindOneActiveByShortCodeFunc != nil {
		return m.FindOneActiveByShortCodeFunc(ctx, shortCode)
	}
	panic("MockLinksModel.FindOneActiveByShortCodeFunc not set")
}

func (m *MockLinksModel) Update(ctx context.Context, data *Links) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, data)
	}
	panic("MockLinksModel.UpdateFunc not set")
}

func (m *MockLinksModel) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockLinksModel.DeleteFunc not set")
}
