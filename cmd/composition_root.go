package cmd

import (
	"log/slog"

	"trading/internal/adapters/out/cache"
	"trading/internal/adapters/out/postgres"
	"trading/internal/adapters/out/postgres/catalogrepo"
	"trading/internal/adapters/out/postgres/partyrepo"
	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/model/party"
	"trading/internal/core/domain/services"
	"trading/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	codec     services.ExtensionCodec
	suppliers *partyrepo.GormCounterpartyRepository
	customers *partyrepo.GormCounterpartyRepository
	names     *cache.NameCache
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		codec:      services.NewExtensionCodec(),
		suppliers:  partyrepo.NewGormCounterpartyRepository(gormDB, party.Supplier),
		customers:  partyrepo.NewGormCounterpartyRepository(gormDB, party.Customer),
		names:      cache.NewNameCache(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		services.NewOrderDecomposer(c.codec, nil),
		c.suppliers,
		c.customers,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRefreshCounterpartyNamesCommandHandler() commands.RefreshCounterpartyNamesCommandHandler {
	return commands.NewRefreshCounterpartyNamesCommandHandler(c.names, c.suppliers, c.customers, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(
		c.uowFactory,
		services.NewOrderAggregator(c.codec, c.configs.AggregateWorkers),
		catalogrepo.NewGormCatalogRepository(c.gormDB),
		c.directories(),
	)
}

func (c *CompositionRoot) CreateGetCounterpartyNamesQueryHandler() queries.GetCounterpartyNamesQueryHandler {
	return queries.NewGetCounterpartyNamesQueryHandler(c.names, c.directories())
}

func (c *CompositionRoot) CreateGetCounterpartiesByNameQueryHandler() queries.GetCounterpartiesByNameQueryHandler {
	return queries.NewGetCounterpartiesByNameQueryHandler(c.directories())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshCounterpartyNamesCommandHandler(),
		c.configs.DirectoryRefreshSpec,
		c.logger,
	)
}

func (c *CompositionRoot) directories() queries.Directories {
	return queries.Directories{Suppliers: c.suppliers, Customers: c.customers}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
