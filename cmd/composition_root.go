package cmd

import (
	"log/slog"

	adapter_http "provenance/internal/adapters/in/http"
	"provenance/internal/adapters/out/postgres"
	"provenance/internal/core/application/usecases/commands"
	"provenance/internal/core/application/usecases/queries"
	"provenance/internal/core/domain/services"
	"provenance/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	tradeService services.TradeService
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		tradeService: services.NewTradeService(),
	}
}

// CreateHTTPServer wires every command and query handler into the web server.
func (c *CompositionRoot) CreateHTTPServer() *adapter_http.Server {
	return adapter_http.NewServer(
		c.CreateCreateBatchCommandHandler(),
		c.CreateTransferCustodyCommandHandler(),
		c.CreateLogProcessingCommandHandler(),
		c.CreateLogInspectionCommandHandler(),
		c.CreateLogDamageCommandHandler(),
		c.CreateFlagBatchCommandHandler(),
		c.CreateResolveFlagCommandHandler(),
		c.CreateMarkSoldCommandHandler(),
		c.CreateListBatchCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateMarkOrderInTransitCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateReportProblemCommandHandler(),
		c.CreateResolveProblemCommandHandler(),
		c.CreateDepositFundsCommandHandler(),
		c.CreateGetBatchQueryHandler(),
		c.CreateGetBatchHistoryQueryHandler(),
		c.CreateGetActiveListingsQueryHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		c.CreateGetAccountBalanceQueryHandler(),
	)
}

// CreateJobManager wires the scheduled jobs over the unit of work factory.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, logger)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferCustodyCommandHandler() commands.TransferCustodyCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferCustodyCommandHandler(f)
}

func (c *CompositionRoot) CreateLogProcessingCommandHandler() commands.LogProcessingCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogProcessingCommandHandler(f)
}

func (c *CompositionRoot) CreateLogInspectionCommandHandler() commands.LogInspectionCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogInspectionCommandHandler(f)
}

func (c *CompositionRoot) CreateLogDamageCommandHandler() commands.LogDamageCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogDamageCommandHandler(f)
}

func (c *CompositionRoot) CreateFlagBatchCommandHandler() commands.FlagBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveFlagCommandHandler() commands.ResolveFlagCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveFlagCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkSoldCommandHandler() commands.MarkSoldCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkSoldCommandHandler(f)
}

func (c *CompositionRoot) CreateListBatchCommandHandler() commands.ListBatchCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewListBatchCommandHandler(f, c.tradeService)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.TradeUoWFactory = FuncTradeUoWFactory(func() commands.TradeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.tradeService)
}

func (c *CompositionRoot) CreateMarkOrderInTransitCommandHandler() commands.MarkOrderInTransitCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderInTransitCommandHandler(f, c.tradeService)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.tradeService)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportProblemCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveProblemCommandHandler() commands.ResolveProblemCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveProblemCommandHandler(f, c.tradeService)
}

func (c *CompositionRoot) CreateDepositFundsCommandHandler() commands.DepositFundsCommandHandler {
	var f commands.WalletUoWFactory = FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDepositFundsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBatchQueryHandler() queries.GetBatchQueryHandler {
	return queries.NewGetBatchQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchHistoryQueryHandler() queries.GetBatchHistoryQueryHandler {
	return queries.NewGetBatchHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveListingsQueryHandler() queries.GetActiveListingsQueryHandler {
	return queries.NewGetActiveListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountBalanceQueryHandler() queries.GetAccountBalanceQueryHandler {
	return queries.NewGetAccountBalanceQueryHandler(c.gormDB)
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}

type FuncCustodyUoWFactory func() commands.CustodyUoW

func (f FuncCustodyUoWFactory) Create() commands.CustodyUoW {
	return f()
}

type FuncMarketUoWFactory func() commands.MarketUoW

func (f FuncMarketUoWFactory) Create() commands.MarketUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncTradeUoWFactory func() commands.TradeUoW

func (f FuncTradeUoWFactory) Create() commands.TradeUoW {
	return f()
}
