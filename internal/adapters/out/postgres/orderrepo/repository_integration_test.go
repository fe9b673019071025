package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "provenance/internal/adapters/out/postgres"
	"provenance/internal/adapters/out/postgres/orderrepo"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/order"
	"provenance/internal/core/ports"
	"provenance/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryTestSuite tests the GORM order repository against a real
// PostgreSQL database, covering escrow state round trips and the open order
// lookup that backs the custody lock.
type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *OrderRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) identity(name string) kernel.Identity {
	identity, err := kernel.NewIdentity(name)
	suite.Require().NoError(err)
	return identity
}

func (suite *OrderRepositoryTestSuite) createTestOrder(batchID kernel.UUID) *order.Order {
	price, err := kernel.NewMoney(250)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		batchID,
		suite.identity("buyer-bella"),
		suite.identity("trader-tom"),
		price,
		price,
		"pickup-7731",
		time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	testOrder := suite.createTestOrder(kernel.NewUUID())
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.IsEqual(retrieved))
	suite.Equal(testOrder.BatchID(), retrieved.BatchID())
	suite.Equal(testOrder.Buyer(), retrieved.Buyer())
	suite.Equal(testOrder.Seller(), retrieved.Seller())
	suite.Equal(int64(250), retrieved.Amount().Amount())
	suite.Equal(order.PaidEscrow, retrieved.Status())
	suite.Equal(order.EscrowHeld, retrieved.Escrow().Status())
	suite.Equal("pickup-7731", retrieved.PickupCode())
	suite.False(retrieved.Closed())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	_, err := repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_SettledOrderRoundTrip() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	testOrder := suite.createTestOrder(kernel.NewUUID())
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.ConfirmDelivery(testOrder.Buyer(), "pickup-7731")
	suite.Require().NoError(err)
	err = repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Equal(order.EscrowReleased, retrieved.Escrow().Status())
	suite.True(retrieved.Closed())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_ClearsProblemFlag() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	testOrder := suite.createTestOrder(kernel.NewUUID())
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.ReportProblem(testOrder.Buyer(), "crate arrived dented")
	suite.Require().NoError(err)
	err = repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ProblemReported())
	suite.Equal(order.Problem, retrieved.Status())

	// Resolution flips the reported flag back to false; the repository must
	// persist the zero value, not skip it.
	err = retrieved.ResolveProblem(retrieved.Seller(), suite.identity("farmer-frida"), "replacement crate sent")
	suite.Require().NoError(err)
	err = repo.Update(ctx, retrieved)
	suite.Require().NoError(err)

	resolved, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(resolved.ProblemReported())
	suite.Equal(order.PaidEscrow, resolved.Status())
}

func (suite *OrderRepositoryTestSuite) TestGetOpenByBatch() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	batchID := kernel.NewUUID()
	testOrder := suite.createTestOrder(batchID)
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	open, err := repo.GetOpenByBatch(ctx, batchID)
	suite.Require().NoError(err)
	suite.True(testOrder.IsEqual(open))

	// No lock for a batch without orders.
	_, err = repo.GetOpenByBatch(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// A cancelled order releases the lock.
	err = testOrder.Cancel(testOrder.Buyer())
	suite.Require().NoError(err)
	err = repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = repo.GetOpenByBatch(ctx, batchID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAllOpen() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	open := suite.createTestOrder(kernel.NewUUID())
	cancelled := suite.createTestOrder(kernel.NewUUID())
	err := repo.Add(ctx, open)
	suite.Require().NoError(err)
	err = repo.Add(ctx, cancelled)
	suite.Require().NoError(err)

	err = cancelled.Cancel(cancelled.Buyer())
	suite.Require().NoError(err)
	err = repo.Update(ctx, cancelled)
	suite.Require().NoError(err)

	openOrders, err := repo.GetAllOpen(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(openOrders, 1)
	suite.True(open.IsEqual(openOrders[0]))
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
