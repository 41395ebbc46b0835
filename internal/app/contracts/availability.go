package contracts

import (
	"context"
	"vetcare-service/internal/app/models"
)

// AvailabilityUsecase is the availability store plus the booking validator.
// Absence of availability is a normal state: the List methods return empty
// sequences, never an error, for unknown providers, specializations or days.
type AvailabilityUsecase interface {
	ListDays(ctx context.Context, providerID, specializationName string) ([]models.DayKey, error)
	ListSlots(ctx context.Context, providerID, specializationName string, day models.DayKey) ([]string, error)
	// Validate fails with ErrSlotUnavailable when the day is not published or
	// the time is not one of the day's published slot labels. It does not
	// check for conflicting appointments on the same slot.
	Validate(ctx context.Context, providerID, specializationName string, day models.DayKey, timeSlot string) error
	InvalidateSchedule(ctx context.Context, providerID string) error
}
