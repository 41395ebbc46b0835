package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vetcare-service/internal/app/config"
	"vetcare-service/internal/app/delivery/http/controllers"
	"vetcare-service/internal/app/delivery/http/middlewares"
	"vetcare-service/internal/app/delivery/http/routers"
	"vetcare-service/internal/app/drivers/database"
	"vetcare-service/internal/app/drivers/logger"
	"vetcare-service/internal/app/drivers/messaging"
	"vetcare-service/internal/app/services/core/appointments"
	"vetcare-service/internal/app/services/core/availability"
	"vetcare-service/internal/app/services/core/notifications"
	"vetcare-service/internal/app/services/core/users"
	"vetcare-service/internal/app/services/shared/locker"
	"vetcare-service/internal/app/services/shared/notifyqueue"
	redisrepo "vetcare-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	bootstrap.Shutdown(shutdownCtx)

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Notification queue
	queueService, err := notifyqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.InternalConfig.App.QueuePrefetch,
		time.Duration(bootstrap.InternalConfig.App.QueuePublishTimeoutInSeconds)*time.Second,
	)
	if err != nil {
		logrus.Fatalf("Error setting up notification queue: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		userMongoRepository,
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.ScheduleCacheTTLInSeconds)*time.Second,
		bootstrap.Logger,
	)

	userUsecase := users.NewUserUsecase(userMongoRepository, availabilityUsecase, bootstrap.Logger)

	// Notification
	notificationMongoRepository := notifications.NewNotificationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, queueService, bootstrap.Logger)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		availabilityUsecase,
		notificationUsecase,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	providerController := controllers.NewProviderController(bootstrap.Logger, userUsecase, availabilityUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		appointmentController,
		providerController,
		notificationController,
	)
}
