package utils

import (
	"testing"
	"vetcare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func validBookingRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		ProviderID:     "dr-a",
		Specialization: "Dental",
		PetName:        "Rex",
		Disease:        "Dental",
		Day:            "Monday",
		Time:           "9:00 AM",
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid booking request passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validBookingRequest()))
	})

	t.Run("Calendar date is a valid day key", func(t *testing.T) {
		request := validBookingRequest()
		request.Day = "2026-09-03"
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Missing required fields fail", func(t *testing.T) {
		request := validBookingRequest()
		request.PetName = ""
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Malformed day key fails", func(t *testing.T) {
		request := validBookingRequest()
		request.Day = "Someday"
		assert.Error(t, ValidateStruct(request))

		request.Day = "03/14/2026"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Blank time slot fails", func(t *testing.T) {
		request := validBookingRequest()
		request.Time = "   "
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Schedule replacement payload is validated recursively", func(t *testing.T) {
		request := &requests.ReplaceSpecializationsRequest{
			Specializations: []requests.SpecializationPayload{
				{
					Name: "Dental",
					Schedule: []requests.ScheduleDayPayload{
						{Day: "Monday", Slots: []string{"09:00", "10:00"}},
					},
				},
			},
		}
		assert.NoError(t, ValidateStruct(request))

		request.Specializations[0].Schedule[0].Slots = []string{}
		assert.Error(t, ValidateStruct(request), "a published day needs at least one slot")
	})
}
