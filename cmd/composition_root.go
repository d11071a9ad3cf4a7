package cmd

import (
	"errors"
	"log/slog"
	"strings"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/in/queue"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/products"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	logger  *slog.Logger

	uowFactory     postgres.GormUnitOfWorkFactory
	eventPublisher *kafka.Publisher
	productClient  ports.ProductClient

	paymentQueue    *kafka.QueueClient
	productionQueue *kafka.QueueClient
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	brokers := strings.Split(configs.KafkaHost, ",")

	eventPublisher := kafka.NewPublisher(brokers, map[string]string{
		order.TopicOrderCreated:    configs.KafkaOrderCreatedTopic,
		order.TopicOrderCancelled:  configs.KafkaOrderCancelledTopic,
		order.TopicOrderCompleted:  configs.KafkaOrderCompletedTopic,
		order.TopicPaymentApproved: configs.KafkaPaymentApprovedTopic,
	}, logger)

	productClient := products.NewCachedClient(
		products.NewHTTPClient(configs.ProductServiceURL),
		configs.RedisHost,
		configs.ProductCacheTTL,
		logger,
	)

	return CompositionRoot{
		configs:         configs,
		gormDB:          gormDB,
		logger:          logger,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventPublisher:  eventPublisher,
		productClient:   productClient,
		paymentQueue:    kafka.NewQueueClient(brokers, configs.KafkaPaymentEventsTopic, configs.KafkaConsumerGroup),
		productionQueue: kafka.NewQueueClient(brokers, configs.KafkaProductionEventsTopic, configs.KafkaConsumerGroup),
	}
}

// Close releases the Kafka producers and consumers held by the root.
func (c *CompositionRoot) Close() error {
	return errors.Join(
		c.eventPublisher.Close(),
		c.paymentQueue.Close(),
		c.productionQueue.Close(),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.productClient, c.eventPublisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.eventPublisher)
}

func (c *CompositionRoot) CreateApprovePaymentCommandHandler() commands.ApprovePaymentCommandHandler {
	return commands.NewApprovePaymentCommandHandler(c.orderUoWFactory(), c.eventPublisher)
}

func (c *CompositionRoot) CreateRejectPaymentCommandHandler() commands.RejectPaymentCommandHandler {
	return commands.NewRejectPaymentCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateStartProductionCommandHandler() commands.StartProductionCommandHandler {
	return commands.NewStartProductionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.eventPublisher)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateConsumerManager() *queue.ConsumerManager {
	paymentRouter := queue.NewPaymentEventRouter(
		c.CreateApprovePaymentCommandHandler(),
		c.CreateRejectPaymentCommandHandler(),
		c.logger,
	)
	productionRouter := queue.NewProductionEventRouter(
		c.CreateStartProductionCommandHandler(),
		c.CreateMarkReadyCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.logger,
	)

	return queue.NewConsumerManager(
		queue.NewConsumer(c.paymentQueue, paymentRouter, c.logger),
		queue.NewConsumer(c.productionQueue, productionRouter, c.logger),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expirationJob := jobs.NewOrderExpirationJob(
		c.CreateGetOrdersQueryHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.configs.OrderExpirationSchedule,
		c.configs.OrderMaxPendingAge,
		c.logger,
	)
	return jobs.NewJobManager(expirationJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
