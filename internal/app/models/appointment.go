package models

import (
	"sort"
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending           AppointmentStatus = "pending"
	AppointmentApproved          AppointmentStatus = "approved"
	AppointmentRescheduled       AppointmentStatus = "rescheduled"
	AppointmentRescheduledByUser AppointmentStatus = "rescheduled_by_user"
	AppointmentEmergencyPending  AppointmentStatus = "emergency_pending"
	AppointmentSeen              AppointmentStatus = "seen"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentApproved, AppointmentRescheduled,
		AppointmentRescheduledByUser, AppointmentEmergencyPending, AppointmentSeen:
		return true
	}
	return false
}

// Appointment is a document in the appointments collection. An appointment
// is never deleted; it is transitioned, or superseded by a new appointment
// that references it through OriginalAppointmentID.
type Appointment struct {
	ID                    string            `bson:"_id,omitempty"`
	ClientID              string            `bson:"clientId"`
	ProviderID            string            `bson:"providerId"`
	PetName               string            `bson:"petName"`
	Disease               string            `bson:"disease"`
	Day                   DayKey            `bson:"preferredDay"`
	Time                  string            `bson:"preferredTime"`
	Status                AppointmentStatus `bson:"status"`
	IsEmergency           bool              `bson:"isEmergency,omitempty"`
	OriginalAppointmentID string            `bson:"originalAppointmentId,omitempty"`
	CreatedAt             time.Time         `bson:"createdAt"`
}

// MatchesSpecialization reports whether the provider publishes a
// specialization whose name equals the appointment's disease field under
// case-insensitive comparison. Re-validated at transfer time, never cached.
func (a *Appointment) MatchesSpecialization(provider *User) bool {
	for _, spec := range provider.Specializations {
		if strings.EqualFold(spec.Name, a.Disease) {
			return true
		}
	}
	return false
}

// SortForProvider orders a provider's appointment list for display:
// emergencies before everything else, then most recent first within each
// tier. The sort is stable so ties keep their incoming order.
func SortForProvider(appointments []Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].IsEmergency != appointments[j].IsEmergency {
			return appointments[i].IsEmergency
		}
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
}

// SortForClient orders a client's appointment list most recent first.
func SortForClient(appointments []Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
}
