package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is a comma separated broker list. Empty disables the Kafka sink.
	KafkaHost        string
	KafkaEventsTopic string

	RoutingServiceURL string
	RoutingTimeout    time.Duration

	UnlocatedStockSchedule string
	StalePickSheetSchedule string
	StalePickSheetAfter    time.Duration

	LogLevel string
}
