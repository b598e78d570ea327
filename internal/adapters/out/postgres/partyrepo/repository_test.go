package partyrepo_test

import (
	"context"
	"testing"

	"trading/internal/adapters/out/postgres/partyrepo"
	"trading/internal/core/domain/model/party"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, partyrepo.Migrate(db))

	suppliers := []partyrepo.CounterpartyDTO{
		{ID: 1, Name: "Globex", Contact: "Hank", Mobile: "555-0101"},
		{ID: 2, Name: "Acme", Contact: "Jo", Tel: "010-1", Address: "1 Main St"},
		{ID: 3, Name: "Acme", Contact: "Sam"},
	}
	require.NoError(t, db.Table(partyrepo.TableFor(party.Supplier)).Create(&suppliers).Error)
	customers := []partyrepo.CounterpartyDTO{{ID: 10, Name: "Initech", Contact: "Bill"}}
	require.NoError(t, db.Table(partyrepo.TableFor(party.Customer)).Create(&customers).Error)
	return db
}

func TestGormCounterpartyRepository_Get(t *testing.T) {
	db := setup(t)
	repo := partyrepo.NewGormCounterpartyRepository(db, party.Supplier)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, &party.Counterparty{ID: 2, Name: "Acme", Contact: "Jo", Tel: "010-1", Address: "1 Main St"}, c)
	})

	t.Run("other directory is not searched", func(t *testing.T) {
		_, err := repo.Get(ctx, 10)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormCounterpartyRepository_GetAllNames(t *testing.T) {
	db := setup(t)
	ctx := context.Background()

	suppliers, err := partyrepo.NewGormCounterpartyRepository(db, party.Supplier).GetAllNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, suppliers)

	customers, err := partyrepo.NewGormCounterpartyRepository(db, party.Customer).GetAllNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Initech"}, customers)
}

func TestGormCounterpartyRepository_GetByName(t *testing.T) {
	db := setup(t)
	repo := partyrepo.NewGormCounterpartyRepository(db, party.Supplier)
	ctx := context.Background()

	t.Run("ordered by id", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "Acme")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, int64(2), found[0].ID)
		assert.Equal(t, int64(3), found[1].ID)
	})

	t.Run("no match is empty", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "Nobody")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestGormCounterpartyRepository_StoreFailure(t *testing.T) {
	db := setup(t)
	repo := partyrepo.NewGormCounterpartyRepository(db, party.Customer)
	require.NoError(t, db.Migrator().DropTable(partyrepo.TableFor(party.Customer)))

	_, err := repo.GetAllNames(context.Background())

	require.ErrorIs(t, err, errs.ErrDependencyFailed)
	assert.Contains(t, err.Error(), "customer directory")
}
