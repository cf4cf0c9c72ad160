package cache

import (
	"context"

	"link-resolver/services/resolver/model"
)

// MockLinkCache is a test mock for the LinkCache interface.
type MockLinkCache struct {
	GetFunc        func(ctx context.Context, shortCode string) (*model.Links, error)
	SetFunc        func(ctx context.Context, link *model.Links) error
	InvalidateFunc func(ctx context.Context, shortCode string) error
}

// Ensure MockLinkCache implements LinkCache interface
var _ LinkCache = (*MockLinkCache)(nil)

func (m *MockLinkCache) Get(ctx context.Context, shortCode string) (*model.Links, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, shortCode)
	}
	return nil, nil
}

func (m *MockLinkCache) Set(ctx context.Context, link *model.Links) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, link)
	}
	return nil
}

func (m *MockLinkCache) Invalidate(ctx context.Context, shortCode string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, shortCode)
	}
	return nil
}
