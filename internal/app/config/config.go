package config

import (
	"vetcare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "vetcare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", ":8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			NotificationQueue:            utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "notification_delivery_queue"),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:      utils.GetEnvInt("APP_REQUEST_TIMEOUT", 10),
			ScheduleCacheTTLInSeconds:    utils.GetEnvInt("APP_SCHEDULE_CACHE_TTL", 60),
			RescheduleLockTTLInSeconds:   utils.GetEnvInt("APP_RESCHEDULE_LOCK_TTL", 15),
			QueuePublishTimeoutInSeconds: utils.GetEnvInt("APP_QUEUE_PUBLISH_TIMEOUT", 5),
			QueuePrefetch:                utils.GetEnvInt("APP_QUEUE_PREFETCH", 1),
		},
	}
}
