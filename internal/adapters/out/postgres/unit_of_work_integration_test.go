package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "provenance/internal/adapters/out/postgres"
	"provenance/internal/adapters/out/postgres/accountrepo"
	"provenance/internal/adapters/out/postgres/batchrepo"
	"provenance/internal/adapters/out/postgres/listingrepo"
	"provenance/internal/adapters/out/postgres/orderrepo"
	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/order"
	"provenance/internal/core/domain/services"
	"provenance/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&batchrepo.BatchDTO{},
		&batchrepo.BatchFlagDTO{},
		&batchrepo.BatchEventDTO{},
		&listingrepo.ListingDTO{},
		&orderrepo.OrderDTO{},
		&accountrepo.AccountDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE batches, batch_flags, batch_events, listings, orders, accounts").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) identity(name string) kernel.Identity {
	identity, err := kernel.NewIdentity(name)
	suite.Require().NoError(err)
	return identity
}

func (suite *UnitOfWorkIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestBatch() *batch.Batch {
	b, err := batch.NewBatch(
		kernel.NewUUID(),
		suite.identity("farmer-frida"),
		"north-field",
		time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return b
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.BatchRepository(), "First instance should provide batch repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.ListingRepository(), "Second instance should provide listing repository")
	suite.NotNil(uow2.AccountRepository(), "Second instance should provide account repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_TradeWorkflow walks a batch from origination through listing,
// purchase, and delivery confirmation across transactions, verifying every
// aggregate lands in its expected final state.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TradeWorkflow() {
	ctx := context.Background()
	svc := services.NewTradeService()
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	originator := suite.identity("farmer-frida")
	seller := suite.identity("trader-tom")
	buyer := suite.identity("buyer-bella")

	// Origination and custody transfer to the seller.
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testBatch := suite.createTestBatch()
	err = uow.BatchRepository().Add(ctx, testBatch)
	suite.Require().NoError(err)

	err = testBatch.TransferCustody(originator, seller, "market-hall", at.Add(time.Hour))
	suite.Require().NoError(err)
	err = uow.BatchRepository().Update(ctx, testBatch)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Listing, funded wallet, and purchase in one transaction.
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	testListing, err := svc.CreateListing(
		testBatch, kernel.NewUUID(), seller, suite.money(250),
		"single origin harvest", "", at.Add(2*time.Hour))
	suite.Require().NoError(err)
	err = uow.ListingRepository().Add(ctx, testListing)
	suite.Require().NoError(err)

	wallet, err := account.NewAccount(buyer)
	suite.Require().NoError(err)
	err = wallet.Credit(suite.money(300))
	suite.Require().NoError(err)
	err = wallet.Debit(suite.money(250))
	suite.Require().NoError(err)
	err = uow.AccountRepository().Add(ctx, wallet)
	suite.Require().NoError(err)

	testOrder, err := svc.PlaceOrder(
		testListing, testBatch, kernel.NewUUID(), buyer,
		suite.money(250), "pickup-7731", at.Add(3*time.Hour))
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.ListingRepository().Update(ctx, testListing)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Shipment and delivery confirmation.
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = svc.MarkInTransit(testOrder, testBatch, seller, "courier-depot", at.Add(4*time.Hour))
	suite.Require().NoError(err)
	err = svc.ConfirmDelivery(testOrder, testBatch, buyer, "pickup-7731", at.Add(5*time.Hour))
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.BatchRepository().Update(ctx, testBatch)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work.
	verify := suite.factory.Create()

	finalBatch, err := verify.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.Equal(batch.Delivered, finalBatch.Stage())
	suite.Equal(buyer, finalBatch.Custodian())

	finalOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, finalOrder.Status())
	suite.Equal(order.EscrowReleased, finalOrder.Escrow().Status())

	finalListing, err := verify.ListingRepository().Get(ctx, testListing.ID())
	suite.Require().NoError(err)
	suite.True(finalListing.Consumed())

	finalWallet, err := verify.AccountRepository().Get(ctx, buyer)
	suite.Require().NoError(err)
	suite.Equal(int64(50), finalWallet.Balance().Amount())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testBatch := suite.createTestBatch()
	wallet, err := account.NewAccount(suite.identity("buyer-bella"))
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BatchRepository().Add(ctx, testBatch)
	suite.Require().NoError(err)
	err = uow.AccountRepository().Add(ctx, wallet)
	suite.Require().NoError(err)

	// Both visible inside the transaction.
	_, err = uow.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	_, err = uow.AccountRepository().Get(ctx, wallet.Owner())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().Error(err, "Batch should not exist after rollback")
	_, err = newUow.AccountRepository().Get(ctx, wallet.Owner())
	suite.Require().Error(err, "Wallet should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	batch1 := suite.createTestBatch()
	batch2 := suite.createTestBatch()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.BatchRepository().Add(ctx, batch1)
	suite.Require().NoError(err)
	err = uow2.BatchRepository().Add(ctx, batch2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes.
	_, err = uow1.BatchRepository().Get(ctx, batch1.ID())
	suite.Require().NoError(err, "UOW1 should see batch1")
	_, err = uow1.BatchRepository().Get(ctx, batch2.ID())
	suite.Require().Error(err, "UOW1 should not see batch2")

	_, err = uow2.BatchRepository().Get(ctx, batch2.ID())
	suite.Require().NoError(err, "UOW2 should see batch2")
	_, err = uow2.BatchRepository().Get(ctx, batch1.ID())
	suite.Require().Error(err, "UOW2 should not see batch1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.BatchRepository().Get(ctx, batch1.ID())
	suite.Require().NoError(err, "Batch1 should persist after commit")
	_, err = newUow.BatchRepository().Get(ctx, batch2.ID())
	suite.Require().Error(err, "Batch2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testBatch := suite.createTestBatch()

	err := uow.BatchRepository().Add(ctx, testBatch)
	suite.Require().NoError(err)

	retrieved, err := uow.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.True(testBatch.IsEqual(retrieved))

	newUow := suite.factory.Create()
	retrieved, err = newUow.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.True(testBatch.IsEqual(retrieved))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
