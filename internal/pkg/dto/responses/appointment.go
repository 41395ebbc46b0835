package responses

import "time"

type Appointment struct {
	ID                    string    `json:"id"`
	ClientID              string    `json:"clientId"`
	ClientName            string    `json:"clientName,omitempty"`
	ProviderID            string    `json:"providerId"`
	ProviderName          string    `json:"providerName,omitempty"`
	PetName               string    `json:"petName"`
	Disease               string    `json:"disease"`
	Day                   string    `json:"preferredDay"`
	Time                  string    `json:"preferredTime"`
	Status                string    `json:"status"`
	IsEmergency           bool      `json:"isEmergency"`
	OriginalAppointmentID string    `json:"originalAppointmentId,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

type EmergencyTransfer struct {
	AppointmentID   string `json:"appointmentId"`
	NewProviderID   string `json:"newProviderId"`
	NewProviderName string `json:"newProviderName,omitempty"`
}
