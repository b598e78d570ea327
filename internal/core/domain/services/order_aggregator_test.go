package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"trading/internal/core/domain/model/catalog"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/services"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogLookup struct{ mock.Mock }

func (m *MockCatalogLookup) GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func newAggregator() services.OrderAggregator {
	return services.NewOrderAggregator(services.NewExtensionCodec(), 4)
}

func decomposeProducts(t *testing.T, productIDs ...int64) []*order.Line {
	t.Helper()
	products := make([]order.ProductLine, len(productIDs))
	for i, id := range productIDs {
		products[i] = order.ProductLine{
			ProductID: id,
			Code:      "stale",
			Amount:    i + 1,
			Unit:      "pcs",
			TaxRate:   "0.13",
			Remark:    "line",
		}
	}
	lines, err := newDecomposer().Decompose(order.Sale, testHeader(), products, mustOrderNo(t, "ORDER123"))
	require.NoError(t, err)
	return lines
}

func withProductExt(t *testing.T, l *order.Line, ext string) *order.Line {
	t.Helper()
	s := l.Snapshot()
	s.ProductExt = ext
	restored, err := order.RestoreLine(s)
	require.NoError(t, err)
	return restored
}

func TestOrderAggregator_Aggregate_MergesCatalog(t *testing.T) {
	ctx := t.Context()
	lines := decomposeProducts(t, 1, 2)

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*catalog.Product{
		{ID: 2, Code: "C2", Name: "Nut", ProductSku: "SKU-2", Brand: "B2"},
		{ID: 1, Code: "C1", Name: "Bolt", ProductSku: "SKU-1", Brand: "B1"},
	}, nil).Once()

	views, err := newAggregator().Aggregate(ctx, lines, lookup)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, services.ProductView{
		OrderNo:    "ORDER123",
		SubOrderNo: "ORDER123_0",
		ProductID:  1,
		Code:       "C1",
		Name:       "Bolt",
		ProductSku: "SKU-1",
		Brand:      "B1",
		Amount:     1,
		Unit:       "pcs",
		TaxRate:    "0.13",
		Remark:     "line",
	}, views[0])
	assert.Equal(t, "ORDER123_1", views[1].SubOrderNo)
	assert.Equal(t, "Nut", views[1].Name)
	assert.Equal(t, 2, views[1].Amount)
	lookup.AssertExpectations(t)
}

func TestOrderAggregator_Aggregate_DeduplicatesCatalogIDs(t *testing.T) {
	lines := decomposeProducts(t, 9, 3, 9, 3, 5)

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{9, 3, 5}).Return([]*catalog.Product{
		{ID: 9, Name: "nine"}, {ID: 3, Name: "three"}, {ID: 5, Name: "five"},
	}, nil).Once()

	views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.NoError(t, err)
	lookup.AssertNumberOfCalls(t, "GetByIDs", 1)
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"nine", "three", "nine", "three", "five"}, names)
}

func TestOrderAggregator_Aggregate_MissingCatalogEntry(t *testing.T) {
	lines := decomposeProducts(t, 1, 404)

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{1, 404}).
		Return([]*catalog.Product{{ID: 1, Name: "Bolt"}}, nil).Once()

	views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.False(t, views[0].CatalogMissing)

	missing := views[1]
	assert.True(t, missing.CatalogMissing)
	assert.Equal(t, int64(404), missing.ProductID)
	assert.Equal(t, "ORDER123_1", missing.SubOrderNo)
	assert.Equal(t, 2, missing.Amount)
	assert.Equal(t, "pcs", missing.Unit)
	assert.Empty(t, missing.Code)
	assert.Empty(t, missing.Name)
	assert.Empty(t, missing.ProductSku)
	assert.Empty(t, missing.Brand)
}

func TestOrderAggregator_Aggregate_CorruptExtensionIsIsolated(t *testing.T) {
	lines := decomposeProducts(t, 1, 2, 3)
	lines[1] = withProductExt(t, lines[1], `{"schema":"order-line-ext","version":7,"fields":{}}`)

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return([]*catalog.Product{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil).Once()

	views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Empty(t, views[0].ExtensionError)
	assert.Empty(t, views[2].ExtensionError)
	assert.Equal(t, 3, views[2].Amount)

	corrupt := views[1]
	assert.Contains(t, corrupt.ExtensionError, errs.ErrCorruptExtension.Error())
	assert.Zero(t, corrupt.Amount)
	assert.Empty(t, corrupt.Unit)
	assert.Equal(t, int64(2), corrupt.ProductID)
}

func TestOrderAggregator_Aggregate_EmptyStoredExtensionIsIsolated(t *testing.T) {
	lines := decomposeProducts(t, 1, 2)
	lines[0] = withProductExt(t, lines[0], "")

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*catalog.Product{
		{ID: 1, Name: "Bolt"}, {ID: 2, Name: "Nut"},
	}, nil).Once()

	views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Contains(t, views[0].ExtensionError, errs.ErrCorruptExtension.Error())
	assert.Zero(t, views[0].Amount)
	assert.Equal(t, "Bolt", views[0].Name)
	assert.Empty(t, views[1].ExtensionError)
	assert.Equal(t, 2, views[1].Amount)
}

func TestOrderAggregator_Aggregate_ZeroExtensionIsNotAnError(t *testing.T) {
	codec := services.NewExtensionCodec()
	blob, err := codec.Encode(order.Extension{})
	require.NoError(t, err)

	lines := decomposeProducts(t, 1)
	lines[0] = withProductExt(t, lines[0], blob)

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{1}).Return([]*catalog.Product{{ID: 1}}, nil).Once()

	views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.NoError(t, err)
	assert.Empty(t, views[0].ExtensionError)
	assert.Zero(t, views[0].Amount)
}

func TestOrderAggregator_Aggregate_Empty(t *testing.T) {
	lookup := new(MockCatalogLookup)

	for _, lines := range [][]*order.Line{nil, {}} {
		views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Nil(t, views)
	}
	lookup.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestOrderAggregator_Aggregate_CatalogFailure(t *testing.T) {
	lines := decomposeProducts(t, 1)
	unavailable := errors.New("connection refused")

	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, []int64{1}).Return(nil, unavailable).Once()

	views, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.ErrorIs(t, err, errs.ErrDependencyFailed)
	require.ErrorIs(t, err, unavailable)
	assert.Contains(t, err.Error(), "catalog")
	assert.Nil(t, views)
}

func TestOrderAggregator_Aggregate_RejectsUnconstructedLine(t *testing.T) {
	lines := []*order.Line{{}}
	lookup := new(MockCatalogLookup)

	_, err := newAggregator().Aggregate(t.Context(), lines, lookup)

	require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	lookup.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestOrderAggregator_Aggregate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	lines := decomposeProducts(t, 1, 2)

	lookup := &cancelingLookup{cancel: cancel}

	views, err := newAggregator().Aggregate(ctx, lines, lookup)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, views)
	assert.Equal(t, int32(1), lookup.calls.Load())
}

// cancelingLookup cancels the caller's context after answering, so the merge
// stage observes cancellation.
type cancelingLookup struct {
	cancel context.CancelFunc
	calls  atomic.Int32
}

func (l *cancelingLookup) GetByIDs(_ context.Context, ids []int64) ([]*catalog.Product, error) {
	l.calls.Add(1)
	defer l.cancel()
	products := make([]*catalog.Product, len(ids))
	for i, id := range ids {
		products[i] = &catalog.Product{ID: id}
	}
	return products, nil
}

func TestNewOrderAggregator_DefaultWorkers(t *testing.T) {
	lines := decomposeProducts(t, 1, 2, 3, 4, 5, 6, 7, 8)
	lookup := new(MockCatalogLookup)
	lookup.On("GetByIDs", mock.Anything, mock.Anything).Return([]*catalog.Product{}, nil).Once()

	views, err := services.NewOrderAggregator(services.NewExtensionCodec(), 0).Aggregate(t.Context(), lines, lookup)

	require.NoError(t, err)
	require.Len(t, views, len(lines))
	for i, v := range views {
		assert.Equal(t, lines[i].SubOrderNo().String(), v.SubOrderNo)
		assert.True(t, v.CatalogMissing)
	}
}
