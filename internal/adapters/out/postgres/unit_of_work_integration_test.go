package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "agritrade/internal/adapters/out/postgres"
	"agritrade/internal/adapters/out/postgres/disputerepo"
	"agritrade/internal/adapters/out/postgres/orderrepo"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.EventDTO{},
		&orderrepo.MessageDTO{},
		&disputerepo.DisputeDTO{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(db.Exec("CREATE SEQUENCE IF NOT EXISTS order_numbers START 1000").Error)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_events, order_messages, disputes").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	var number int64
	suite.Require().NoError(suite.db.Raw("SELECT nextval('order_numbers')").Scan(&number).Error)

	price, err := kernel.NewMoney(850)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), nil, 500, price)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, order.TypeBuy, "Winter wheat",
		kernel.NewUUID(), kernel.NewUUID(),
		time.Now().Add(72*time.Hour).Truncate(time.Second).UTC(), "12 Mill Road", "net 30", "",
		[]*order.Item{item},
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DisputeRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.DisputeRepository())
}

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

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	now := time.Now().UTC()

	testOrder := suite.createTestOrder()
	creator := testOrder.CreatedByID()
	supplierOrg := kernel.NewUUID()

	suite.Require().NoError(testOrder.Publish(creator, now))
	suite.Require().NoError(testOrder.Accept(supplierOrg, false, "", kernel.NewUUID(), now))
	suite.Require().NoError(testOrder.StartFulfillment("rail car 41", nil, kernel.NewUUID(), now))

	testDispute, err := dispute.NewDispute(
		kernel.NewUUID(), testOrder.ID(), creator,
		"quality", "moisture above contract limit", []string{"lab-report.pdf"},
		"partial refund", dispute.SeverityHigh, now,
	)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.DisputeRepository().Add(ctx, testDispute)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.SupplierOrgID())
	suite.True(retrievedOrder.SupplierOrgID().IsEqual(supplierOrg))

	disputes, err := newUow.DisputeRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(disputes, 1)
	suite.Equal(dispute.StatusOpen, disputes[0].Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

// TestUnitOfWork_DisputeWorkflow drives an order into fulfillment, raises a
// dispute, and walks the dispute through response and resolution across
// separate transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DisputeWorkflow() {
	ctx := context.Background()
	now := time.Now().UTC()

	testOrder := suite.createTestOrder()
	creator := testOrder.CreatedByID()
	supplierOrg := kernel.NewUUID()
	supplierUser := kernel.NewUUID()

	suite.Require().NoError(testOrder.Publish(creator, now))
	suite.Require().NoError(testOrder.Accept(supplierOrg, false, "", supplierUser, now))
	suite.Require().NoError(testOrder.StartFulfillment("rail car 41", nil, supplierUser, now))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testDispute, err := dispute.NewDispute(
		kernel.NewUUID(), testOrder.ID(), creator,
		"quality", "moisture above contract limit", nil,
		"partial refund", dispute.SeverityMedium, now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DisputeRepository().Add(ctx, testDispute))
	suite.Require().NoError(uow.Commit(ctx))

	// Supplier responds in a second transaction.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.DisputeRepository().Get(ctx, testDispute.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Respond(supplierUser, "resampling the lot", nil, now.Add(time.Hour)))
	suite.Require().NoError(uow.DisputeRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	// Buyer resolves in a third.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err = uow.DisputeRepository().Get(ctx, testDispute.ID())
	suite.Require().NoError(err)
	suite.Equal(dispute.StatusInReview, loaded.Status())
	suite.Require().NotNil(loaded.Response())
	suite.Require().NoError(loaded.Resolve(creator, "price adjusted", "3% rebate", now.Add(2*time.Hour)))
	suite.Require().NoError(uow.DisputeRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	final, err := suite.factory.Create().DisputeRepository().Get(ctx, testDispute.ID())
	suite.Require().NoError(err)
	suite.Equal(dispute.StatusResolved, final.Status())
	suite.Require().NotNil(final.Resolution())
	suite.Equal("price adjusted", final.Resolution().Outcome)
	suite.Equal(int64(3), final.Version())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
