package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

var baseTime = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, orderrepo.Migrate(db))
	return db
}

func header(exOrderNo, counterparty string, orderTime time.Time) order.Header {
	return order.Header{
		ExOrderNo:      exOrderNo,
		OrderTime:      orderTime,
		DeliveryTime:   orderTime.Add(72 * time.Hour),
		CounterpartyID: 7,
		Counterparty:   counterparty,
		Contact:        "Jo Doe",
		Materials:      []string{"a.pdf", "b.pdf"},
		DueAccount:     "100.00",
		Actor:          "buyer01",
	}
}

func newLines(t *testing.T, kind order.Kind, h order.Header, n int) []*order.Line {
	t.Helper()
	parent := kernel.NewOrderNo()
	lines := make([]*order.Line, 0, n)
	for i := range n {
		sub, err := parent.Child(i)
		require.NoError(t, err)
		product := order.ProductLine{
			ProductID:  int64(100 + i),
			Code:       fmt.Sprintf("P-%d", i),
			Name:       fmt.Sprintf("Product %d", i),
			ProductSku: fmt.Sprintf("SKU-%d", i),
		}
		ext := fmt.Sprintf(`{"schema":"order-line-ext","version":1,"fields":{"amount":%d}}`, i+1)
		l, err := order.NewLine(kind, sub, h, product, ext, h.OrderTime)
		require.NoError(t, err)
		lines = append(lines, l)
	}
	return lines
}

func newRepository(t *testing.T, db *gorm.DB, kind order.Kind) (*orderrepo.GormOrderLineRepository, *MockAggregateTracker) {
	t.Helper()
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return orderrepo.NewGormOrderLineRepository(db, kind, tracker), tracker
}

func TestGormOrderLineRepository_AddAndFind(t *testing.T) {
	db := openSQLite(t)
	repo, tracker := newRepository(t, db, order.Purchase)
	ctx := context.Background()

	lines := newLines(t, order.Purchase, header("EX-1", "Acme Supplies", baseTime), 3)
	require.NoError(t, repo.Add(ctx, lines))

	found, err := repo.Find(ctx, order.Criteria{ExOrderNo: "EX-1", All: true})
	require.NoError(t, err)
	require.Len(t, found, 3)

	for i, l := range found {
		assert.Equal(t, lines[i].SubOrderNo().String(), l.SubOrderNo().String())
		assert.True(t, l.OrderNo().IsEqual(lines[0].OrderNo()))
		assert.Equal(t, order.Purchase, l.Kind())
		assert.Equal(t, lines[i].ProductExt(), l.ProductExt())
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, l.Header().Materials)
		assert.Equal(t, order.Running, l.OrderState())
		assert.Equal(t, order.ToAudit, l.AuditState())
		assert.Equal(t, order.NoneOut, l.StockState())
		assert.Equal(t, "buyer01", l.Creator())
	}
	tracker.AssertNumberOfCalls(t, "TrackAggregate", 3)
}

func TestGormOrderLineRepository_KindsAreSeparated(t *testing.T) {
	db := openSQLite(t)
	purchases, _ := newRepository(t, db, order.Purchase)
	sales, _ := newRepository(t, db, order.Sale)
	ctx := context.Background()

	require.NoError(t, purchases.Add(ctx, newLines(t, order.Purchase, header("EX-1", "Acme", baseTime), 2)))

	found, err := sales.Find(ctx, order.Criteria{All: true})
	require.NoError(t, err)
	assert.Empty(t, found)

	var count int64
	require.NoError(t, db.Table(orderrepo.TableFor(order.Purchase)).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGormOrderLineRepository_Add_Rejects(t *testing.T) {
	db := openSQLite(t)
	repo, _ := newRepository(t, db, order.Purchase)
	ctx := context.Background()

	t.Run("empty batch", func(t *testing.T) {
		err := repo.Add(ctx, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed line", func(t *testing.T) {
		err := repo.Add(ctx, []*order.Line{{}})
		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("line of another kind", func(t *testing.T) {
		err := repo.Add(ctx, newLines(t, order.Sale, header("EX-2", "Acme", baseTime), 1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("duplicate sub order number leaves nothing behind", func(t *testing.T) {
		lines := newLines(t, order.Purchase, header("EX-3", "Acme", baseTime), 2)
		require.NoError(t, repo.Add(ctx, lines))

		err := repo.Add(ctx, lines)
		require.ErrorIs(t, err, errs.ErrValueIsNotUnique)

		found, err := repo.Find(ctx, order.Criteria{ExOrderNo: "EX-3", All: true})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})
}

func TestGormOrderLineRepository_Find_Filters(t *testing.T) {
	db := openSQLite(t)
	repo, _ := newRepository(t, db, order.Sale)
	ctx := context.Background()

	first := newLines(t, order.Sale, header("EX-1", "Acme Supplies", baseTime), 2)
	second := newLines(t, order.Sale, header("EX-2", "Globex", baseTime.Add(48*time.Hour)), 1)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	testCases := []struct {
		name     string
		criteria order.Criteria
		want     int
	}{
		{"no filter", order.Criteria{}, 3},
		{"by ex order no", order.Criteria{ExOrderNo: "EX-2"}, 1},
		{"by order no", order.Criteria{OrderNo: first[0].OrderNo().String()}, 2},
		{"by counterparty fragment", order.Criteria{Counterparty: "Acme"}, 2},
		{"by order state", order.Criteria{OrderState: order.Running}, 3},
		{"by audit state", order.Criteria{AuditState: order.Approved}, 0},
		{"by stock state", order.Criteria{StockState: order.NoneOut}, 3},
		{"from time", order.Criteria{OrderTimeFrom: baseTime.Add(24 * time.Hour)}, 1},
		{"to time", order.Criteria{OrderTimeTo: baseTime}, 2},
		{"first page", order.Criteria{Page: 1, PageSize: 2}, 2},
		{"second page", order.Criteria{Page: 2, PageSize: 2}, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := repo.Find(ctx, tc.criteria)
			require.NoError(t, err)
			assert.Len(t, found, tc.want)
		})
	}

	t.Run("newest orders first", func(t *testing.T) {
		found, err := repo.Find(ctx, order.Criteria{All: true})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "EX-2", found[0].ExOrderNo())
	})

	t.Run("invalid criteria", func(t *testing.T) {
		_, err := repo.Find(ctx, order.Criteria{PageSize: order.MaxPageSize + 1})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGormOrderLineRepository_Find_CorruptRecord(t *testing.T) {
	db := openSQLite(t)
	repo, _ := newRepository(t, db, order.Purchase)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newLines(t, order.Purchase, header("EX-1", "Acme", baseTime), 1)))
	require.NoError(t, db.Table(orderrepo.TableFor(order.Purchase)).
		Where("ex_order_no = ?", "EX-1").
		Update("order_state", "bogus").Error)

	_, err := repo.Find(ctx, order.Criteria{ExOrderNo: "EX-1"})
	require.ErrorIs(t, err, errs.ErrDependencyFailed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGormOrderLineRepository_Find_EmptyExtension(t *testing.T) {
	db := openSQLite(t)
	repo, _ := newRepository(t, db, order.Purchase)
	ctx := context.Background()

	lines := newLines(t, order.Purchase, header("EX-1", "Acme", baseTime), 3)
	require.NoError(t, repo.Add(ctx, lines))
	require.NoError(t, db.Table(orderrepo.TableFor(order.Purchase)).
		Where("sub_order_no = ?", lines[1].SubOrderNo().String()).
		Update("product_ext", "").Error)

	found, err := repo.Find(ctx, order.Criteria{ExOrderNo: "EX-1", All: true})

	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Empty(t, found[1].ProductExt())
	assert.Equal(t, lines[0].ProductExt(), found[0].ProductExt())
	assert.Equal(t, lines[2].ProductExt(), found[2].ProductExt())
}

func TestGormOrderLineRepository_Add_RejectsEmptyExtension(t *testing.T) {
	db := openSQLite(t)
	repo, _ := newRepository(t, db, order.Purchase)

	lines := newLines(t, order.Purchase, header("EX-1", "Acme", baseTime), 2)
	s := lines[1].Snapshot()
	s.ProductExt = ""
	restored, err := order.RestoreLine(s)
	require.NoError(t, err)
	lines[1] = restored

	err = repo.Add(context.Background(), lines)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "product extension")
	var count int64
	require.NoError(t, db.Table(orderrepo.TableFor(order.Purchase)).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTableFor(t *testing.T) {
	assert.Equal(t, "purchase_orders", orderrepo.TableFor(order.Purchase))
	assert.Equal(t, "sale_orders", orderrepo.TableFor(order.Sale))
	assert.Equal(t, []string{"purchase_orders", "sale_orders"}, orderrepo.Tables())
}
