package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_ACTOR_ID_KEY             ContextKey = "actor_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "VTCR_SVC_"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionNotifications = "notifications"
)

const (
	UserRoleProvider = "provider"
	UserRoleClient   = "client"
)

// Notification messages emitted by state transitions.
const (
	NotificationAppointmentApproved    = "Your appointment has been approved!"
	NotificationAppointmentRescheduled = "Your appointment has been rescheduled."
	NotificationEmergencyTransferred   = "You have received a transferred emergency appointment."
)

const (
	RedisKeyProviderSchedule = "provider_schedule:%s"
	RedisKeyRescheduleLock   = "reschedule_lock:%s"
)
