package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"vetcare-service/internal/app/config"
	"vetcare-service/internal/app/delivery/http/controllers"
	"vetcare-service/internal/app/delivery/http/middlewares"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/dto/requests"
	"vetcare-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAppointmentUsecase struct {
	duplicateCalls int
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, clientID string, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	return &responses.Appointment{}, nil
}

func (s *stubAppointmentUsecase) BookEmergency(ctx context.Context, clientID string, request *requests.CreateEmergencyAppointmentRequest) (*responses.Appointment, error) {
	return &responses.Appointment{}, nil
}

func (s *stubAppointmentUsecase) FindAllForClient(ctx context.Context, clientID string) ([]responses.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) FindAllForProvider(ctx context.Context, providerID string) ([]responses.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Approve(ctx context.Context, providerID, appointmentID string) error {
	return nil
}

func (s *stubAppointmentUsecase) RescheduleByProvider(ctx context.Context, providerID, appointmentID string) error {
	return nil
}

func (s *stubAppointmentUsecase) MarkSeen(ctx context.Context, providerID, appointmentID string) error {
	return nil
}

func (s *stubAppointmentUsecase) RescheduleByClient(ctx context.Context, clientID, appointmentID string, request *requests.RescheduleAppointmentRequest) (*responses.Appointment, error) {
	return &responses.Appointment{}, nil
}

func (s *stubAppointmentUsecase) TransferEmergency(ctx context.Context, providerID, appointmentID string) (*responses.EmergencyTransfer, error) {
	return &responses.EmergencyTransfer{}, nil
}

func (s *stubAppointmentUsecase) FindDuplicatePending(ctx context.Context) ([]responses.Appointment, error) {
	s.duplicateCalls++
	return []responses.Appointment{}, nil
}

func newAppointmentTestRouter(usecase *stubAppointmentUsecase) chi.Router {
	internalConfig := &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5}}
	m := middlewares.NewMiddlewares(zap.NewNop(), internalConfig)
	controller := controllers.NewAppointmentController(zap.NewNop(), usecase, internalConfig)

	router := chi.NewRouter()
	router.Use(m.RequestIDMiddleware)
	attachAppointmentRoutes(router, m, controller)
	return router
}

func TestAppointmentRoutesRequireActor(t *testing.T) {
	t.Run("Duplicates listing rejects requests without an identity", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}
		router := newAppointmentTestRouter(usecase)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/duplicates", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Zero(t, usecase.duplicateCalls, "the usecase must not run without an actor")
	})

	t.Run("Duplicates listing serves an identified caller", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}
		router := newAppointmentTestRouter(usecase)

		request := httptest.NewRequest(http.MethodGet, "/duplicates", nil)
		request.Header.Set(constvars.HeaderXUserID, "ops-1")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, usecase.duplicateCalls)
	})

	t.Run("Every appointment route carries the actor guard", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}
		router := newAppointmentTestRouter(usecase)

		routes := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/"},
			{http.MethodPost, "/"},
			{http.MethodPost, "/emergency"},
			{http.MethodGet, "/duplicates"},
			{http.MethodPost, "/appt-1/approve"},
			{http.MethodPost, "/appt-1/reschedule"},
			{http.MethodPost, "/appt-1/seen"},
			{http.MethodPost, "/appt-1/reschedule-by-client"},
			{http.MethodPost, "/appt-1/transfer"},
		}
		for _, route := range routes {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(route.method, route.path, nil))

			assert.Equalf(t, http.StatusUnauthorized, recorder.Code, "%s %s must demand an actor", route.method, route.path)
		}
	})
}
