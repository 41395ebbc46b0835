package controllers

import (
	"context"
	"net/http"
	"time"
	"vetcare-service/internal/app/config"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/dto/requests"
	"vetcare-service/internal/pkg/dto/responses"
	"vetcare-service/internal/pkg/exceptions"
	"vetcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log                 *zap.Logger
	UserUsecase         contracts.UserUsecase
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

func NewProviderController(
	logger *zap.Logger,
	userUsecase contracts.UserUsecase,
	availabilityUsecase contracts.AvailabilityUsecase,
	internalConfig *config.InternalConfig,
) *ProviderController {
	return &ProviderController{
		Log:                 logger,
		UserUsecase:         userUsecase,
		AvailabilityUsecase: availabilityUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *ProviderController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *ProviderController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProviderController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	specializationFilter := r.URL.Query().Get("specialization")

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.UserUsecase.FindProviders(ctx, specializationFilter)
	if err != nil {
		ctrl.Log.Error("ProviderController.FindAll UserUsecase.FindProviders error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProviderController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProvidersSuccessMessage, response)
}

func (ctrl *ProviderController) ListAvailableDays(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProviderController.ListAvailableDays requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	providerID := chi.URLParam(r, constvars.URLParamProviderID)
	if providerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamProviderID))
		return
	}
	specializationName := chi.URLParam(r, constvars.URLParamSpecializationName)
	if specializationName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamSpecializationName))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	days, err := ctrl.AvailabilityUsecase.ListDays(ctx, providerID, specializationName)
	if err != nil {
		ctrl.Log.Error("ProviderController.ListAvailableDays AvailabilityUsecase.ListDays error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.Availability{
		ProviderID:     providerID,
		Specialization: specializationName,
		Days:           make([]string, 0, len(days)),
	}
	for _, day := range days {
		response.Days = append(response.Days, string(day))
	}

	ctrl.Log.Info("ProviderController.ListAvailableDays succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Days)))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}

func (ctrl *ProviderController) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProviderController.ListAvailableSlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	providerID := chi.URLParam(r, constvars.URLParamProviderID)
	if providerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamProviderID))
		return
	}
	specializationName := chi.URLParam(r, constvars.URLParamSpecializationName)
	if specializationName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamSpecializationName))
		return
	}
	day := chi.URLParam(r, constvars.URLParamDay)
	if day == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamDay))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	slots, err := ctrl.AvailabilityUsecase.ListSlots(ctx, providerID, specializationName, models.DayKey(day))
	if err != nil {
		ctrl.Log.Error("ProviderController.ListAvailableSlots AvailabilityUsecase.ListSlots error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.String(constvars.LoggingDayKey, day),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.Availability{
		ProviderID:     providerID,
		Specialization: specializationName,
		Day:            day,
		Slots:          slots,
	}

	ctrl.Log.Info("ProviderController.ListAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int(constvars.LoggingResponseLengthKey, len(slots)))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}

// ReplaceSpecializations overwrites the acting provider's whole
// specializations array. There is no per-day patching; the client always
// sends the complete replacement set.
func (ctrl *ProviderController) ReplaceSpecializations(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProviderController.ReplaceSpecializations requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	actorID, ok := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActorID(nil))
		return
	}

	request := new(requests.ReplaceSpecializationsRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("ProviderController.ReplaceSpecializations failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ProviderController.ReplaceSpecializations validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	specializations := make([]models.Specialization, 0, len(request.Specializations))
	for _, payload := range request.Specializations {
		specialization := models.Specialization{Name: payload.Name}
		for _, scheduleDay := range payload.Schedule {
			specialization.Schedule = append(specialization.Schedule, models.ScheduleDay{
				Day:   models.DayKey(scheduleDay.Day),
				Slots: scheduleDay.Slots,
			})
		}
		specializations = append(specializations, specialization)
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	err = ctrl.UserUsecase.ReplaceSpecializations(ctx, actorID, specializations)
	if err != nil {
		ctrl.Log.Error("ProviderController.ReplaceSpecializations UserUsecase.ReplaceSpecializations error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, actorID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProviderController.ReplaceSpecializations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, actorID),
		zap.Int(constvars.LoggingResponseLengthKey, len(specializations)))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReplaceScheduleSuccessMessage, nil)
}
