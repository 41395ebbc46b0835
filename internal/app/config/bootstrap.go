package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		if err := b.RabbitMQ.Close(); err != nil {
			log.Printf("Error closing rabbitMQ connection: %v", err)
		} else {
			log.Println("Successfully closed rabbitMQ connection")
		}
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			log.Printf("Error closing redis connection: %v", err)
		} else {
			log.Println("Successfully closed redis connection")
		}
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting mongo client: %v", err)
		} else {
			log.Println("Successfully disconnected mongo client")
		}
	}

	if b.Logger != nil {
		b.Logger.Sync()
	}

	return nil
}
