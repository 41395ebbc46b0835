package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of [%s]",
	"day_key":    "must be a weekday name or an ISO date (YYYY-MM-DD)",
	"slot_label": "must be a non-empty time label",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSlotUnavailable               = "the selected day and time is not available, please pick another slot"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientNotificationNotFound          = "notification not found"
	ErrClientEmergencyDayInvalid           = "emergency visits must be booked on a calendar date (YYYY-MM-DD)"
	ErrClientUserNotFound                  = "user not found"
	ErrClientAppointmentStateChanged       = "the appointment changed in the meantime, please refresh and try again"
	ErrClientNoAlternateProvider           = "no other doctor with the same specialization found"
	ErrClientRescheduleIncomplete          = "the reschedule could not be fully applied, please contact support"
	ErrClientRescheduleInProgress          = "another reschedule for this appointment is in progress"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "struct validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevMissingRequestID          = "request_id not found in request context"
	ErrDevMissingActorID            = "actor id header missing or not found in request context"
	ErrDevServerDeadlineExceeded    = "the server exceeded the given deadline"
	ErrDevURLParamMissing           = "required URL parameter %s is missing"
	ErrDevUserNotExists             = "user does not exist in database"
	ErrDevUserNotProvider           = "user exists but does not carry the provider role"
	ErrDevAppointmentNotExists      = "appointment does not exist in database"
	ErrDevNotificationNotExists     = "notification does not exist or is not owned by the recipient"
	ErrDevEmergencyDayNotCalendar   = "emergency booking day key is not a calendar date"
	ErrDevActorNotPermitted         = "actor is not permitted to trigger this transition"
	ErrDevIllegalTransition         = "transition is not an edge of the appointment state machine"
	ErrDevStatusPreconditionFailed  = "conditional update matched no document, current status differs from expected"
	ErrDevSlotNotPublished          = "requested day or time is not in the provider's published schedule"
	ErrDevNoAlternateProvider       = "no enumerated provider carries a matching specialization"
	ErrDevRescheduleSecondWrite     = "reschedule successor created but original status update failed"
	ErrDevScheduleNotHomogeneous    = "schedule mixes weekday and calendar-date day keys"
	ErrDevDBFailedToFindDocument    = "failed to find document(s) on database"
	ErrDevDBFailedToInsertDocument  = "failed to insert document on database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document on database"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents from database cursor"
	ErrDevRedisFailedToSetKey       = "failed to set key on redis"
	ErrDevRedisFailedToGetKey       = "failed to get key from redis"
	ErrDevRedisFailedToDeleteKey    = "failed to delete key from redis"
	ErrDevQueueFailedToPublish      = "failed to publish message to queue"
	ErrDevQueueNotConfirmed         = "broker did not confirm the published message"
)
