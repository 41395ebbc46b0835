package appointments

import (
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
)

// transitionTable enumerates every legal status edge and the role allowed
// to trigger it. approved and seen are terminal; rescheduled_by_user is a
// terminal marker, the follow-up lives in a fresh appointment. The
// emergency_pending self-edge is the transfer: the status is re-armed under
// a new provider.
var transitionTable = map[models.AppointmentStatus]map[models.AppointmentStatus]string{
	models.AppointmentPending: {
		models.AppointmentApproved:    constvars.UserRoleProvider,
		models.AppointmentRescheduled: constvars.UserRoleProvider,
		models.AppointmentSeen:        constvars.UserRoleProvider,
	},
	models.AppointmentEmergencyPending: {
		models.AppointmentApproved:         constvars.UserRoleProvider,
		models.AppointmentEmergencyPending: constvars.UserRoleProvider,
	},
	models.AppointmentRescheduled: {
		models.AppointmentRescheduledByUser: constvars.UserRoleClient,
	},
}

// CanTransition reports whether actorRole may move an appointment from one
// status to another along a legal edge.
func CanTransition(from, to models.AppointmentStatus, actorRole string) bool {
	edges, ok := transitionTable[from]
	if !ok {
		return false
	}
	role, ok := edges[to]
	return ok && role == actorRole
}

// IsTerminal reports whether no edge leads out of the status.
func IsTerminal(status models.AppointmentStatus) bool {
	return len(transitionTable[status]) == 0
}
