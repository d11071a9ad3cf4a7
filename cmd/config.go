package cmd

import "time"

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                  string
	KafkaConsumerGroup         string
	KafkaPaymentEventsTopic    string
	KafkaProductionEventsTopic string
	KafkaOrderCreatedTopic     string
	KafkaOrderCancelledTopic   string
	KafkaOrderCompletedTopic   string
	KafkaPaymentApprovedTopic  string

	RedisHost       string
	ProductCacheTTL time.Duration

	ProductServiceURL string

	OrderExpirationSchedule string
	OrderMaxPendingAge      time.Duration
}
