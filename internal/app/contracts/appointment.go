package contracts

import (
	"context"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/dto/requests"
	"vetcare-service/internal/pkg/dto/responses"
)

// AppointmentPatch carries the fields a conditional update may set.
// Empty ProviderID means the provider reference is left unchanged.
type AppointmentPatch struct {
	Status     models.AppointmentStatus
	ProviderID string
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (string, error)
	// FindByID returns (nil, nil) when no appointment carries the given id.
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByProviderID(ctx context.Context, providerID string) ([]models.Appointment, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Appointment, error)
	// UpdateStatusIfCurrent applies patch only when the appointment still
	// carries the expected status AND the expected provider. The provider is
	// part of the precondition because an emergency transfer is
	// status-preserving: it re-homes the appointment without leaving the
	// emergency_pending status, so status alone cannot detect that the
	// actor's snapshot went stale. A mismatch yields ErrStatusConflict, an
	// unknown id ErrAppointmentNotFound; neither is retried here.
	UpdateStatusIfCurrent(ctx context.Context, appointmentID string, expectedStatus models.AppointmentStatus, expectedProviderID string, patch AppointmentPatch) error
	// CreateSuccessorAndClose performs the two-record reschedule-by-client
	// write: insert successor, then move the original from rescheduled to
	// rescheduled_by_user. Runs transactionally where the deployment allows;
	// otherwise a failed second write surfaces ErrPartialTransactionFailure
	// with the successor already persisted.
	CreateSuccessorAndClose(ctx context.Context, successor *models.Appointment, originalID string) (string, error)
	// FindDuplicatePending lists pending successors whose original has not
	// reached rescheduled_by_user, the reconciliation query for a torn
	// reschedule.
	FindDuplicatePending(ctx context.Context) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	Book(ctx context.Context, clientID string, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
	BookEmergency(ctx context.Context, clientID string, request *requests.CreateEmergencyAppointmentRequest) (*responses.Appointment, error)
	FindAllForClient(ctx context.Context, clientID string) ([]responses.Appointment, error)
	FindAllForProvider(ctx context.Context, providerID string) ([]responses.Appointment, error)
	Approve(ctx context.Context, providerID, appointmentID string) error
	RescheduleByProvider(ctx context.Context, providerID, appointmentID string) error
	MarkSeen(ctx context.Context, providerID, appointmentID string) error
	RescheduleByClient(ctx context.Context, clientID, appointmentID string, request *requests.RescheduleAppointmentRequest) (*responses.Appointment, error)
	TransferEmergency(ctx context.Context, providerID, appointmentID string) (*responses.EmergencyTransfer, error)
	FindDuplicatePending(ctx context.Context) ([]responses.Appointment, error)
}
