package queries_test

import (
	"context"

	"trading/internal/core/domain/model/catalog"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/model/party"
	"trading/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderLineRepository struct{ mock.Mock }

func (m *MockOrderLineRepository) Add(ctx context.Context, lines []*order.Line) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockOrderLineRepository) Find(ctx context.Context, criteria order.Criteria) ([]*order.Line, error) {
	args := m.Called(ctx, criteria)
	if v := args.Get(0); v != nil {
		return v.([]*order.Line), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderLineRepositories struct{ mock.Mock }

func (m *MockOrderLineRepositories) OrderLineRepository(kind order.Kind) ports.OrderLineRepository {
	args := m.Called(kind)
	return args.Get(0).(ports.OrderLineRepository)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCounterpartyRepository struct{ mock.Mock }

func (m *MockCounterpartyRepository) Get(ctx context.Context, id int64) (*party.Counterparty, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*party.Counterparty), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCounterpartyRepository) GetAllNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCounterpartyRepository) GetByName(ctx context.Context, name string) ([]*party.Counterparty, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.([]*party.Counterparty), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCounterpartyNameCache struct{ mock.Mock }

func (m *MockCounterpartyNameCache) Names(role party.Role) ([]string, bool) {
	args := m.Called(role)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *MockCounterpartyNameCache) Store(role party.Role, names []string) {
	m.Called(role, names)
}
