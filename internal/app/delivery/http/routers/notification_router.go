package routers

import (
	"vetcare-service/internal/app/delivery/http/controllers"
	"vetcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.With(middlewares.ActorMiddleware).Get("/", notificationController.FindAll)
	router.With(middlewares.ActorMiddleware).Post("/{notificationID}/read", notificationController.MarkRead)
}
