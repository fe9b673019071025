package commands_test

import (
	"context"
	"errors"

	"provenance/internal/core/application/usecases/commands"
	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/listing"
	"provenance/internal/core/domain/model/order"
	"provenance/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}
func (m *MockBatchRepository) GetAllTampered(_ context.Context) ([]*batch.Batch, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetOpenByBatch(ctx context.Context, batchID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllOpen(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}
func (m *MockListingRepository) GetActiveByBatch(ctx context.Context, batchID kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}
func (m *MockListingRepository) GetAllActive(_ context.Context) ([]*listing.Listing, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, owner kernel.Identity) (*account.Account, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in the package, so a
// single mock type serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}
func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWalletUoWFactory struct{ mock.Mock }

func (m *MockWalletUoWFactory) Create() commands.WalletUoW {
	args := m.Called()
	return args.Get(0).(commands.WalletUoW)
}

type MockCustodyUoWFactory struct{ mock.Mock }

func (m *MockCustodyUoWFactory) Create() commands.CustodyUoW {
	args := m.Called()
	return args.Get(0).(commands.CustodyUoW)
}

type MockMarketUoWFactory struct{ mock.Mock }

func (m *MockMarketUoWFactory) Create() commands.MarketUoW {
	args := m.Called()
	return args.Get(0).(commands.MarketUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockTradeUoWFactory struct{ mock.Mock }

func (m *MockTradeUoWFactory) Create() commands.TradeUoW {
	args := m.Called()
	return args.Get(0).(commands.TradeUoW)
}
