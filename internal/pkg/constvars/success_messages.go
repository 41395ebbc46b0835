package constvars

const (
	CreateAppointmentSuccessMessage     = "Appointment requested successfully!"
	GetAppointmentSuccessMessage        = "Successfully retrieved appointment(s)"
	ApproveAppointmentSuccessMessage    = "Successfully approved the appointment"
	RescheduleAppointmentSuccessMessage = "Successfully marked the appointment for reschedule"
	MarkSeenSuccessMessage              = "Successfully marked the appointment as seen"
	RescheduleByClientSuccessMessage    = "Successfully rescheduled the appointment"
	TransferEmergencySuccessMessage     = "Successfully transferred the emergency appointment"
	GetProvidersSuccessMessage          = "Successfully retrieved provider(s)"
	GetAvailabilitySuccessMessage       = "Successfully retrieved availability"
	ReplaceScheduleSuccessMessage       = "Specializations and schedules saved"
	GetNotificationsSuccessMessage      = "Successfully retrieved notification(s)"
	ReadNotificationSuccessMessage      = "Successfully marked notification as read"
)
