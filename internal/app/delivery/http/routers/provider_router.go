package routers

import (
	"vetcare-service/internal/app/delivery/http/controllers"
	"vetcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	providerController *controllers.ProviderController,
	appointmentController *controllers.AppointmentController,
) {
	router.Get("/", providerController.FindAll)
	router.With(middlewares.ActorMiddleware).Get("/appointments", appointmentController.FindAllForProvider)
	router.With(middlewares.ActorMiddleware).Put("/specializations", providerController.ReplaceSpecializations)
	router.Get("/{providerID}/specializations/{specializationName}/days", providerController.ListAvailableDays)
	router.Get("/{providerID}/specializations/{specializationName}/days/{day}/slots", providerController.ListAvailableSlots)
}
