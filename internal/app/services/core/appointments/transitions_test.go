package appointments

import (
	"testing"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("Provider edges from pending", func(t *testing.T) {
		assert.True(t, CanTransition(models.AppointmentPending, models.AppointmentApproved, constvars.UserRoleProvider))
		assert.True(t, CanTransition(models.AppointmentPending, models.AppointmentRescheduled, constvars.UserRoleProvider))
		assert.True(t, CanTransition(models.AppointmentPending, models.AppointmentSeen, constvars.UserRoleProvider))
	})

	t.Run("Clients cannot act on pending", func(t *testing.T) {
		assert.False(t, CanTransition(models.AppointmentPending, models.AppointmentApproved, constvars.UserRoleClient))
		assert.False(t, CanTransition(models.AppointmentPending, models.AppointmentSeen, constvars.UserRoleClient))
	})

	t.Run("Emergency edges including the transfer self-edge", func(t *testing.T) {
		assert.True(t, CanTransition(models.AppointmentEmergencyPending, models.AppointmentApproved, constvars.UserRoleProvider))
		assert.True(t, CanTransition(models.AppointmentEmergencyPending, models.AppointmentEmergencyPending, constvars.UserRoleProvider))
		assert.False(t, CanTransition(models.AppointmentEmergencyPending, models.AppointmentSeen, constvars.UserRoleProvider))
	})

	t.Run("Rescheduled is only closed by the client", func(t *testing.T) {
		assert.True(t, CanTransition(models.AppointmentRescheduled, models.AppointmentRescheduledByUser, constvars.UserRoleClient))
		assert.False(t, CanTransition(models.AppointmentRescheduled, models.AppointmentRescheduledByUser, constvars.UserRoleProvider))
		assert.False(t, CanTransition(models.AppointmentRescheduled, models.AppointmentApproved, constvars.UserRoleProvider))
	})

	t.Run("No edge revives a closed appointment", func(t *testing.T) {
		for _, from := range []models.AppointmentStatus{
			models.AppointmentApproved,
			models.AppointmentSeen,
			models.AppointmentRescheduledByUser,
		} {
			for _, to := range []models.AppointmentStatus{
				models.AppointmentPending,
				models.AppointmentApproved,
				models.AppointmentRescheduled,
				models.AppointmentRescheduledByUser,
				models.AppointmentEmergencyPending,
				models.AppointmentSeen,
			} {
				assert.False(t, CanTransition(from, to, constvars.UserRoleProvider), "%s -> %s must not be allowed", from, to)
				assert.False(t, CanTransition(from, to, constvars.UserRoleClient), "%s -> %s must not be allowed", from, to)
			}
		}
	})
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.AppointmentApproved))
	assert.True(t, IsTerminal(models.AppointmentSeen))
	assert.True(t, IsTerminal(models.AppointmentRescheduledByUser))
	assert.False(t, IsTerminal(models.AppointmentPending))
	assert.False(t, IsTerminal(models.AppointmentEmergencyPending))
	assert.False(t, IsTerminal(models.AppointmentRescheduled))
}
