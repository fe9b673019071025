package batchrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "provenance/internal/adapters/out/postgres"
	"provenance/internal/adapters/out/postgres/batchrepo"
	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/ports"
	"provenance/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BatchRepositoryTestSuite tests the GORM batch repository against a real
// PostgreSQL database, covering flag ledger and event history persistence.
type BatchRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *BatchRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&batchrepo.BatchDTO{}, &batchrepo.BatchFlagDTO{}, &batchrepo.BatchEventDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *BatchRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE batches, batch_flags, batch_events").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *BatchRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *BatchRepositoryTestSuite) identity(name string) kernel.Identity {
	identity, err := kernel.NewIdentity(name)
	suite.Require().NoError(err)
	return identity
}

func (suite *BatchRepositoryTestSuite) createTestBatch() *batch.Batch {
	b, err := batch.NewBatch(
		kernel.NewUUID(),
		suite.identity("farmer-frida"),
		"north-field",
		time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return b
}

func (suite *BatchRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	repo := suite.factory.Create().BatchRepository()

	testBatch := suite.createTestBatch()
	err := repo.Add(ctx, testBatch)
	suite.Require().NoError(err)

	retrieved, err := repo.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)

	suite.True(testBatch.IsEqual(retrieved))
	suite.Equal(testBatch.Originator(), retrieved.Originator())
	suite.Equal(testBatch.Custodian(), retrieved.Custodian())
	suite.Equal("north-field", retrieved.Location())
	suite.Equal(batch.Harvested, retrieved.Stage())
	suite.False(retrieved.Tampered())

	history := retrieved.History()
	suite.Require().Len(history, 1)
	suite.Equal(batch.EventCreated, history[0].Kind())
}

func (suite *BatchRepositoryTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	repo := suite.factory.Create().BatchRepository()

	_, err := repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BatchRepositoryTestSuite) TestUpdate_PersistsHistoryInOrder() {
	ctx := context.Background()
	repo := suite.factory.Create().BatchRepository()

	testBatch := suite.createTestBatch()
	err := repo.Add(ctx, testBatch)
	suite.Require().NoError(err)

	originator := testBatch.Originator()
	trader := suite.identity("trader-tom")
	at := testBatch.CreatedAt().Add(time.Hour)

	err = testBatch.TransferCustody(originator, trader, "market-hall", at)
	suite.Require().NoError(err)
	err = testBatch.LogInspection(trader, "moisture within tolerance", at.Add(time.Hour))
	suite.Require().NoError(err)

	err = repo.Update(ctx, testBatch)
	suite.Require().NoError(err)

	retrieved, err := repo.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)

	suite.Equal(trader, retrieved.Custodian())
	suite.Equal("market-hall", retrieved.Location())

	history := retrieved.History()
	suite.Require().Len(history, 3)
	suite.Equal(batch.EventCreated, history[0].Kind())
	suite.Equal(batch.EventTransferred, history[1].Kind())
	suite.Equal(batch.EventInspected, history[2].Kind())
	suite.Equal("moisture within tolerance", history[2].Details())
}

func (suite *BatchRepositoryTestSuite) TestUpdate_PersistsFlagLedger() {
	ctx := context.Background()
	repo := suite.factory.Create().BatchRepository()

	testBatch := suite.createTestBatch()
	err := repo.Add(ctx, testBatch)
	suite.Require().NoError(err)

	inspector := suite.identity("inspector-ivan")
	at := testBatch.CreatedAt().Add(time.Hour)

	err = testBatch.Flag(inspector, "seal broken", at)
	suite.Require().NoError(err)
	err = repo.Update(ctx, testBatch)
	suite.Require().NoError(err)

	retrieved, err := repo.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Tampered())
	suite.Equal(batch.Tampered, retrieved.Stage())
	suite.Equal(map[kernel.Identity]string{inspector: "seal broken"}, retrieved.Flags())

	// Resolving the flag clears the ledger but the stage stays Tampered.
	err = retrieved.ResolveFlag(retrieved.Originator(), inspector, "seal replaced and verified", at.Add(time.Hour))
	suite.Require().NoError(err)
	err = repo.Update(ctx, retrieved)
	suite.Require().NoError(err)

	resolved, err := repo.Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.False(resolved.Tampered())
	suite.Equal(batch.Tampered, resolved.Stage())
	suite.Empty(resolved.Flags())
}

func (suite *BatchRepositoryTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	repo := suite.factory.Create().BatchRepository()

	testBatch := suite.createTestBatch()
	err := repo.Update(ctx, testBatch)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *BatchRepositoryTestSuite) TestGetAllTampered() {
	ctx := context.Background()
	repo := suite.factory.Create().BatchRepository()

	clean := suite.createTestBatch()
	flagged := suite.createTestBatch()
	err := repo.Add(ctx, clean)
	suite.Require().NoError(err)
	err = repo.Add(ctx, flagged)
	suite.Require().NoError(err)

	err = flagged.Flag(suite.identity("buyer-bella"), "label mismatch", flagged.CreatedAt().Add(time.Hour))
	suite.Require().NoError(err)
	err = repo.Update(ctx, flagged)
	suite.Require().NoError(err)

	tampered, err := repo.GetAllTampered(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tampered, 1)
	suite.True(flagged.IsEqual(tampered[0]))
}

func TestBatchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BatchRepositoryTestSuite))
}
