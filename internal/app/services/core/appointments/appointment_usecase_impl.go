package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vetcare-service/internal/app/config"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/dto/requests"
	"vetcare-service/internal/pkg/dto/responses"
	"vetcare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	AvailabilityService   contracts.AvailabilityUsecase
	NotificationService   contracts.NotificationUsecase
	LockService           contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	availabilityService contracts.AvailabilityUsecase,
	notificationService contracts.NotificationUsecase,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			UserRepository:        userRepository,
			AvailabilityService:   availabilityService,
			NotificationService:   notificationService,
			LockService:           lockService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Book(ctx context.Context, clientID string, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
	)

	provider, err := uc.requireProvider(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}

	err = uc.AvailabilityService.Validate(ctx, request.ProviderID, request.Specialization, models.DayKey(request.Day), request.Time)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ClientID:   clientID,
		ProviderID: request.ProviderID,
		PetName:    request.PetName,
		Disease:    request.Disease,
		Day:        models.DayKey(request.Day),
		Time:       request.Time,
		Status:     models.AppointmentPending,
		CreatedAt:  time.Now(),
	}
	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	response := buildAppointmentResponse(appointment)
	response.ProviderName = provider.Name
	return &response, nil
}

// BookEmergency creates an appointment directly in emergency_pending. The
// emergency path publishes its own calendar-date day keys and ignores the
// provider's weekly schedule, so the slot is not validated against it.
func (uc *appointmentUsecase) BookEmergency(ctx context.Context, clientID string, request *requests.CreateEmergencyAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookEmergency called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
	)

	provider, err := uc.requireProvider(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}

	day := models.DayKey(request.Day)
	if day.Kind() != models.DayKeyCalendarDate {
		return nil, exceptions.ErrEmergencyDayNotCalendarDate(nil)
	}

	appointment := &models.Appointment{
		ClientID:    clientID,
		ProviderID:  request.ProviderID,
		PetName:     request.PetName,
		Disease:     request.Disease,
		Day:         day,
		Time:        request.Time,
		Status:      models.AppointmentEmergencyPending,
		IsEmergency: true,
		CreatedAt:   time.Now(),
	}
	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	response := buildAppointmentResponse(appointment)
	response.ProviderName = provider.Name
	return &response, nil
}

func (uc *appointmentUsecase) FindAllForClient(ctx context.Context, clientID string) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	models.SortForClient(appointments)
	return uc.buildListResponse(ctx, appointments)
}

// FindAllForProvider lists the provider's appointments with the emergency
// tier first; a transferred appointment no longer appears here for the
// previous provider because the query is scoped to the current providerId.
func (uc *appointmentUsecase) FindAllForProvider(ctx context.Context, providerID string) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	models.SortForProvider(appointments)
	return uc.buildListResponse(ctx, appointments)
}

func (uc *appointmentUsecase) Approve(ctx context.Context, providerID, appointmentID string) error {
	appointment, err := uc.requireTransition(ctx, providerID, appointmentID, constvars.UserRoleProvider, models.AppointmentApproved)
	if err != nil {
		return err
	}

	err = uc.AppointmentRepository.UpdateStatusIfCurrent(ctx, appointmentID, appointment.Status, appointment.ProviderID, contracts.AppointmentPatch{Status: models.AppointmentApproved})
	if err != nil {
		return err
	}

	uc.emit(ctx, appointment.ClientID, models.NotificationAppointmentUpdate, constvars.NotificationAppointmentApproved)
	return nil
}

func (uc *appointmentUsecase) RescheduleByProvider(ctx context.Context, providerID, appointmentID string) error {
	appointment, err := uc.requireTransition(ctx, providerID, appointmentID, constvars.UserRoleProvider, models.AppointmentRescheduled)
	if err != nil {
		return err
	}

	err = uc.AppointmentRepository.UpdateStatusIfCurrent(ctx, appointmentID, appointment.Status, appointment.ProviderID, contracts.AppointmentPatch{Status: models.AppointmentRescheduled})
	if err != nil {
		return err
	}

	uc.emit(ctx, appointment.ClientID, models.NotificationAppointmentUpdate, constvars.NotificationAppointmentRescheduled)
	return nil
}

func (uc *appointmentUsecase) MarkSeen(ctx context.Context, providerID, appointmentID string) error {
	appointment, err := uc.requireTransition(ctx, providerID, appointmentID, constvars.UserRoleProvider, models.AppointmentSeen)
	if err != nil {
		return err
	}

	// no notification on this edge
	return uc.AppointmentRepository.UpdateStatusIfCurrent(ctx, appointmentID, appointment.Status, appointment.ProviderID, contracts.AppointmentPatch{Status: models.AppointmentSeen})
}

// RescheduleByClient spawns a pending successor on the client's new slot
// and closes the original as rescheduled_by_user. The two writes are one
// logical operation; a redis lock keeps concurrent attempts on the same
// appointment from both inserting successors before either close lands.
func (uc *appointmentUsecase) RescheduleByClient(ctx context.Context, clientID, appointmentID string, request *requests.RescheduleAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RescheduleByClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.ClientID != clientID {
		return nil, exceptions.ErrActorNotPermitted(nil)
	}
	if !CanTransition(appointment.Status, models.AppointmentRescheduledByUser, constvars.UserRoleClient) {
		return nil, exceptions.ErrIllegalTransition(nil)
	}

	// the original day is excluded from the candidate set
	newDay := models.DayKey(request.Day)
	if newDay == appointment.Day {
		return nil, exceptions.ErrSlotUnavailable(nil)
	}

	// same provider, same specialization: the disease field is the
	// specialization key on this path
	err = uc.AvailabilityService.Validate(ctx, appointment.ProviderID, appointment.Disease, newDay, request.Time)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyRescheduleLock, appointmentID)
	lockTTL := time.Duration(uc.InternalConfig.App.RescheduleLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrRescheduleLocked(nil)
	}
	defer uc.LockService.Unlock(ctx, lockKey, lockValue)

	successor := &models.Appointment{
		ClientID:              appointment.ClientID,
		ProviderID:            appointment.ProviderID,
		PetName:               appointment.PetName,
		Disease:               appointment.Disease,
		Day:                   newDay,
		Time:                  request.Time,
		Status:                models.AppointmentPending,
		OriginalAppointmentID: appointment.ID,
		CreatedAt:             time.Now(),
	}

	successorID, err := uc.AppointmentRepository.CreateSuccessorAndClose(ctx, successor, appointment.ID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleByClient error applying two-record reschedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	successor.ID = successorID

	response := buildAppointmentResponse(successor)
	return &response, nil
}

// TransferEmergency re-homes an emergency appointment to the first
// enumerated provider, other than the current one, publishing a
// specialization that matches the disease field case-insensitively. The
// match is re-validated here, never cached from booking time.
func (uc *appointmentUsecase) TransferEmergency(ctx context.Context, providerID, appointmentID string) (*responses.EmergencyTransfer, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.TransferEmergency called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	appointment, err := uc.requireTransition(ctx, providerID, appointmentID, constvars.UserRoleProvider, models.AppointmentEmergencyPending)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.UserRepository.FindProviders(ctx)
	if err != nil {
		return nil, err
	}

	var replacement *models.User
	for i := range candidates {
		if candidates[i].ID == appointment.ProviderID {
			continue
		}
		if appointment.MatchesSpecialization(&candidates[i]) {
			replacement = &candidates[i]
			break
		}
	}
	if replacement == nil {
		uc.Log.Info("appointmentUsecase.TransferEmergency no alternate provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingSpecializationKey, appointment.Disease),
		)
		return nil, exceptions.ErrNoAlternateProvider(nil)
	}

	err = uc.AppointmentRepository.UpdateStatusIfCurrent(ctx, appointmentID, models.AppointmentEmergencyPending, appointment.ProviderID, contracts.AppointmentPatch{
		Status:     models.AppointmentEmergencyPending,
		ProviderID: replacement.ID,
	})
	if err != nil {
		return nil, err
	}

	uc.emit(ctx, replacement.ID, models.NotificationEmergency, constvars.NotificationEmergencyTransferred)

	uc.Log.Info("appointmentUsecase.TransferEmergency succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingProviderIDKey, replacement.ID),
	)
	return &responses.EmergencyTransfer{
		AppointmentID:   appointmentID,
		NewProviderID:   replacement.ID,
		NewProviderName: replacement.Name,
	}, nil
}

func (uc *appointmentUsecase) FindDuplicatePending(ctx context.Context) ([]responses.Appointment, error) {
	duplicates, err := uc.AppointmentRepository.FindDuplicatePending(ctx)
	if err != nil {
		return nil, err
	}
	return uc.buildListResponse(ctx, duplicates)
}

// requireTransition fetches the appointment and checks actor ownership and
// the legality of moving to target from the current status. The returned
// snapshot's status is the expected prior state for the conditional update.
func (uc *appointmentUsecase) requireTransition(ctx context.Context, providerID, appointmentID, actorRole string, target models.AppointmentStatus) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.ProviderID != providerID {
		return nil, exceptions.ErrActorNotPermitted(nil)
	}
	if !CanTransition(appointment.Status, target, actorRole) {
		return nil, exceptions.ErrIllegalTransition(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) requireProvider(ctx context.Context, providerID string) (*models.User, error) {
	provider, err := uc.UserRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	if provider.Role != constvars.UserRoleProvider {
		return nil, exceptions.ErrUserNotProvider(nil)
	}
	return provider, nil
}

func (uc *appointmentUsecase) emit(ctx context.Context, recipientID string, kind models.NotificationKind, message string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.NotificationService.Emit(ctx, &models.Notification{
		RecipientID: recipientID,
		Kind:        kind,
		Message:     message,
	})
	if err != nil {
		// the transition already committed; the side channel failing is not
		// a reason to report the operation as failed
		uc.Log.Warn("appointmentUsecase.emit error emitting notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientIDKey, recipientID),
			zap.Error(err),
		)
	}
}

// buildListResponse joins user display names onto the appointments, one
// lookup per distinct user.
func (uc *appointmentUsecase) buildListResponse(ctx context.Context, appointments []models.Appointment) ([]responses.Appointment, error) {
	names := make(map[string]string)
	lookup := func(userID string) (string, error) {
		if name, ok := names[userID]; ok {
			return name, nil
		}
		user, err := uc.UserRepository.FindByID(ctx, userID)
		if err != nil {
			return "", err
		}
		name := ""
		if user != nil {
			name = user.Name
		}
		names[userID] = name
		return name, nil
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		item := buildAppointmentResponse(&appointments[i])

		providerName, err := lookup(appointments[i].ProviderID)
		if err != nil {
			return nil, err
		}
		item.ProviderName = providerName

		clientName, err := lookup(appointments[i].ClientID)
		if err != nil {
			return nil, err
		}
		item.ClientName = clientName

		response = append(response, item)
	}
	return response, nil
}

func buildAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:                    appointment.ID,
		ClientID:              appointment.ClientID,
		ProviderID:            appointment.ProviderID,
		PetName:               appointment.PetName,
		Disease:               appointment.Disease,
		Day:                   string(appointment.Day),
		Time:                  appointment.Time,
		Status:                string(appointment.Status),
		IsEmergency:           appointment.IsEmergency,
		OriginalAppointmentID: appointment.OriginalAppointmentID,
		CreatedAt:             appointment.CreatedAt,
	}
}
