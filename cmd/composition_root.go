package cmd

import (
	"log/slog"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormCatalogRepository
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalogRepository(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.catalog, c.catalog, c.catalog, c.publisher,
	)
}

func (c *CompositionRoot) CreateConsolidateOrdersCommandHandler() commands.ConsolidateOrdersCommandHandler {
	return commands.NewConsolidateOrdersCommandHandler(c.orderUoWFactory(), c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateAssignSupplierCommandHandler() commands.AssignSupplierCommandHandler {
	return commands.NewAssignSupplierCommandHandler(c.orderUoWFactory(), c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateDispatchOrdersCommandHandler() commands.DispatchOrdersCommandHandler {
	return commands.NewDispatchOrdersCommandHandler(c.orderUoWFactory(), c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateMarkLineReceivedCommandHandler() commands.MarkLineReceivedCommandHandler {
	return commands.NewMarkLineReceivedCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetShopkeeperOrdersQueryHandler() queries.GetShopkeeperOrdersQueryHandler {
	return queries.NewGetShopkeeperOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierOrdersQueryHandler() queries.GetSupplierOrdersQueryHandler {
	return queries.NewGetSupplierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.uowFactory.Create().OrderRepository(),
		c.config.OverdueWatchSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
