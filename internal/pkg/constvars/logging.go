package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingActorIDKey        = "actor_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResponseLengthKey = "response_length"

	LoggingAppointmentIDKey  = "appointment_id"
	LoggingProviderIDKey     = "provider_id"
	LoggingClientIDKey       = "client_id"
	LoggingRecipientIDKey    = "recipient_id"
	LoggingSpecializationKey = "specialization"
	LoggingDayKey            = "day"
	LoggingTimeSlotKey       = "time_slot"
	LoggingStatusKey         = "status"
	LoggingQueueKey          = "queue"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
)
