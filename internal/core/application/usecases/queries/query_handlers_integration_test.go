package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersTestSuite exercises both read handlers against a real
// PostgreSQL instance, seeding data through the write-side repository.
type QueryHandlersTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	byIDHandler    queries.GetOrderByIDQueryHandler
	listHandler    queries.GetOrdersQueryHandler
	orderRepo      *orderrepo.GormOrderRepository
	sampleProducts map[string]kernel.Money
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.byIDHandler = queries.NewGetOrderByIDQueryHandler(db)
	suite.listHandler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})

	burger, err := kernel.MoneyFromFloat(10.50)
	suite.Require().NoError(err)
	fries, err := kernel.MoneyFromFloat(3.25)
	suite.Require().NoError(err)
	suite.sampleProducts = map[string]kernel.Money{
		"Burger": burger,
		"Fries":  fries,
	}
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *QueryHandlersTestSuite) seedOrder(name string, approve bool) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), nil, name)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddItem(
		kernel.NewUUID(), "Burger", 2, suite.sampleProducts["Burger"]))
	suite.Require().NoError(aggregate.AddItem(
		kernel.NewUUID(), "Fries", 1, suite.sampleProducts["Fries"]))
	if approve {
		suite.Require().NoError(aggregate.ApprovePayment())
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersTestSuite) TestGetOrderByID() {
	aggregate := suite.seedOrder("Jane", false)

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	response, err := suite.byIDHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(response.ID.IsEqual(aggregate.ID()))
	suite.Equal("Jane", response.CustomerName)
	suite.Equal("Pending", response.Status)
	suite.Equal("24.25", response.TotalAmount.StringFixed(2))
	suite.Require().Len(response.Items, 2)
	suite.Equal("Burger", response.Items[0].ProductName)
	suite.Equal("Fries", response.Items[1].ProductName)
	suite.Equal("21.00", response.Items[0].TotalPrice.StringFixed(2))
}

func (suite *QueryHandlersTestSuite) TestGetOrderByID_NotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.byIDHandler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_All() {
	suite.seedOrder("Jane", false)
	suite.seedOrder("John", true)

	summaries, err := suite.listHandler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(summaries, 2)
	for _, summary := range summaries {
		suite.Equal(2, summary.ItemCount)
		suite.Equal("24.25", summary.TotalAmount.StringFixed(2))
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrders_FilteredByStatus() {
	suite.seedOrder("Jane", false)
	approved := suite.seedOrder("John", true)

	query, err := queries.NewGetOrdersQueryWithStatus(order.PaymentApproved)
	suite.Require().NoError(err)

	summaries, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.True(summaries[0].ID.IsEqual(approved.ID()))
	suite.Equal("PaymentApproved", summaries[0].Status)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_EmptyDatabase() {
	summaries, err := suite.listHandler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
