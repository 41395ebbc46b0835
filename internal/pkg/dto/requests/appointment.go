package requests

type CreateAppointmentRequest struct {
	ProviderID     string `json:"providerId" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	PetName        string `json:"petName" validate:"required"`
	Disease        string `json:"disease" validate:"required"`
	Day            string `json:"preferredDay" validate:"required,day_key"`
	Time           string `json:"preferredTime" validate:"required,slot_label"`
}

type CreateEmergencyAppointmentRequest struct {
	ProviderID string `json:"providerId" validate:"required"`
	PetName    string `json:"petName" validate:"required"`
	Disease    string `json:"disease" validate:"required"`
	Day        string `json:"preferredDay" validate:"required,day_key"`
	Time       string `json:"preferredTime" validate:"required,slot_label"`
}

type RescheduleAppointmentRequest struct {
	Day  string `json:"preferredDay" validate:"required,day_key"`
	Time string `json:"preferredTime" validate:"required,slot_label"`
}
