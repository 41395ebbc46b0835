package users

import (
	"context"
	"strings"
	"sync"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/dto/responses"
	"vetcare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository      contracts.UserRepository
	AvailabilityService contracts.AvailabilityUsecase
	Log                 *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	availabilityService contracts.AvailabilityUsecase,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository:      userRepository,
			AvailabilityService: availabilityService,
			Log:                 logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

// FindProviders lists the provider directory. When specializationFilter is
// non-empty, only providers publishing a specialization whose name contains
// the filter (case-insensitive) are returned, and only the matching names
// are listed for each.
func (uc *userUsecase) FindProviders(ctx context.Context, specializationFilter string) ([]responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecializationKey, specializationFilter),
	)

	providers, err := uc.UserRepository.FindProviders(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.FindProviders error fetching providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(specializationFilter))
	response := make([]responses.Provider, 0, len(providers))
	for _, provider := range providers {
		names := make([]string, 0, len(provider.Specializations))
		for _, spec := range provider.Specializations {
			if filter != "" && !strings.Contains(strings.ToLower(spec.Name), filter) {
				continue
			}
			names = append(names, spec.Name)
		}
		if filter != "" && len(names) == 0 {
			continue
		}
		response = append(response, responses.Provider{
			ID:              provider.ID,
			Name:            provider.Name,
			Specializations: names,
		})
	}
	return response, nil
}

// ReplaceSpecializations overwrites the provider's whole specializations
// array. Callers must supply the complete desired schedule; there is no
// per-slot patch path.
func (uc *userUsecase) ReplaceSpecializations(ctx context.Context, providerID string, specializations []models.Specialization) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ReplaceSpecializations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	user, err := uc.UserRepository.FindByID(ctx, providerID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}
	if user.Role != constvars.UserRoleProvider {
		return exceptions.ErrUserNotProvider(nil)
	}

	for i := range specializations {
		if len(specializations[i].Schedule) > 0 && specializations[i].ScheduleKind() == models.DayKeyUnknown {
			return exceptions.ErrScheduleNotHomogeneous(nil)
		}
	}

	if err := uc.UserRepository.ReplaceSpecializations(ctx, providerID, specializations); err != nil {
		uc.Log.Error("userUsecase.ReplaceSpecializations error updating provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(err),
		)
		return err
	}

	if err := uc.AvailabilityService.InvalidateSchedule(ctx, providerID); err != nil {
		// cache falls back to its TTL
		uc.Log.Warn("userUsecase.ReplaceSpecializations error invalidating schedule cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(err),
		)
	}
	return nil
}
