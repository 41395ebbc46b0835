package availability

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// availabilityUsecase is the availability store and the booking validator.
// Specialization names are matched exactly here, the same comparison the
// booking flow uses; emergency matching is the one case-insensitive path.
type availabilityUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			CacheTTL:        cacheTTL,
			Log:             logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) ListDays(ctx context.Context, providerID, specializationName string) ([]models.DayKey, error) {
	spec, err := uc.findSpecialization(ctx, providerID, specializationName)
	if err != nil || spec == nil {
		return []models.DayKey{}, err
	}

	days := make([]models.DayKey, 0, len(spec.Schedule))
	for _, day := range spec.Schedule {
		days = append(days, day.Day)
	}
	return days, nil
}

func (uc *availabilityUsecase) ListSlots(ctx context.Context, providerID, specializationName string, day models.DayKey) ([]string, error) {
	spec, err := uc.findSpecialization(ctx, providerID, specializationName)
	if err != nil || spec == nil {
		return []string{}, err
	}

	scheduleDay := spec.FindDay(day)
	if scheduleDay == nil {
		return []string{}, nil
	}
	return scheduleDay.Slots, nil
}

// Validate confirms the slot is currently offered. It deliberately does not
// look at existing appointments: two clients may book the same slot.
func (uc *availabilityUsecase) Validate(ctx context.Context, providerID, specializationName string, day models.DayKey, timeSlot string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	slots, err := uc.ListSlots(ctx, providerID, specializationName, day)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot == timeSlot {
			return nil
		}
	}

	uc.Log.Info("availabilityUsecase.Validate slot not published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingSpecializationKey, specializationName),
		zap.String(constvars.LoggingDayKey, string(day)),
		zap.String(constvars.LoggingTimeSlotKey, timeSlot),
	)
	return exceptions.ErrSlotUnavailable(nil)
}

func (uc *availabilityUsecase) InvalidateSchedule(ctx context.Context, providerID string) error {
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyProviderSchedule, providerID))
}

// findSpecialization resolves the provider's published specializations,
// read through the redis cache. Unknown provider, non-provider role, or
// unknown specialization all resolve to nil without error: absence of
// availability is a normal state.
func (uc *availabilityUsecase) findSpecialization(ctx context.Context, providerID, specializationName string) (*models.Specialization, error) {
	specializations, err := uc.loadSpecializations(ctx, providerID)
	if err != nil {
		return nil, err
	}
	for i := range specializations {
		if specializations[i].Name == specializationName {
			return &specializations[i], nil
		}
	}
	return nil, nil
}

func (uc *availabilityUsecase) loadSpecializations(ctx context.Context, providerID string) ([]models.Specialization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := fmt.Sprintf(constvars.RedisKeyProviderSchedule, providerID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		// a broken cache must not break reads
		uc.Log.Warn("availabilityUsecase.loadSpecializations error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var specializations []models.Specialization
		if err := json.Unmarshal([]byte(cached), &specializations); err == nil {
			return specializations, nil
		}
	}

	user, err := uc.UserRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != constvars.UserRoleProvider {
		return nil, nil
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, user.Specializations, uc.CacheTTL); err != nil {
		uc.Log.Warn("availabilityUsecase.loadSpecializations error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return user.Specializations, nil
}
