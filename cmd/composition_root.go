package cmd

import (
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	return commands.NewCreateSupplierCommandHandler(c.supplierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSupplierCommandHandler() commands.UpdateSupplierCommandHandler {
	return commands.NewUpdateSupplierCommandHandler(c.supplierUoWFactory())
}

func (c *CompositionRoot) CreateRemoveSupplierCommandHandler() commands.RemoveSupplierCommandHandler {
	return commands.NewRemoveSupplierCommandHandler(c.supplierUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	return commands.NewAddOrderLineCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderLineCommandHandler() commands.UpdateOrderLineCommandHandler {
	return commands.NewUpdateOrderLineCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	return commands.NewRemoveOrderLineCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateReconcileOrderTotalsCommandHandler() commands.ReconcileOrderTotalsCommandHandler {
	return commands.NewReconcileOrderTotalsCommandHandler(c.OrderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllSuppliersQueryHandler() queries.GetAllSuppliersQueryHandler {
	return queries.NewGetAllSuppliersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierQueryHandler() queries.GetSupplierQueryHandler {
	return queries.NewGetSupplierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// OrderUoWFactory exposes the order unit of work factory for consumers wired
// outside the handlers, such as the reconciliation job's stale totals scan.
func (c *CompositionRoot) OrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) supplierUoWFactory() commands.SupplierUoWFactory {
	return FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
}

type FuncSupplierUoWFactory func() commands.SupplierUoW

func (f FuncSupplierUoWFactory) Create() commands.SupplierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
