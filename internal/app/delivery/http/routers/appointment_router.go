package routers

import (
	"vetcare-service/internal/app/delivery/http/controllers"
	"vetcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.ActorMiddleware).Get("/", appointmentController.FindAllForClient)
	router.With(middlewares.ActorMiddleware).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.ActorMiddleware).Post("/emergency", appointmentController.CreateEmergencyAppointment)
	router.With(middlewares.ActorMiddleware).Get("/duplicates", appointmentController.FindDuplicatePending)
	router.With(middlewares.ActorMiddleware).Post("/{appointmentID}/approve", appointmentController.ApproveAppointment)
	router.With(middlewares.ActorMiddleware).Post("/{appointmentID}/reschedule", appointmentController.RescheduleAppointment)
	router.With(middlewares.ActorMiddleware).Post("/{appointmentID}/seen", appointmentController.MarkAppointmentSeen)
	router.With(middlewares.ActorMiddleware).Post("/{appointmentID}/reschedule-by-client", appointmentController.RescheduleByClient)
	router.With(middlewares.ActorMiddleware).Post("/{appointmentID}/transfer", appointmentController.TransferEmergencyAppointment)
}
