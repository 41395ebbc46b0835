package users

import (
	"context"
	"testing"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users    []models.User
	replaced map[string][]models.Specialization
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == userID {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindProviders(ctx context.Context) ([]models.User, error) {
	var providers []models.User
	for _, user := range f.users {
		if user.Role == constvars.UserRoleProvider {
			providers = append(providers, user)
		}
	}
	return providers, nil
}

func (f *fakeUserRepository) ReplaceSpecializations(ctx context.Context, providerID string, specializations []models.Specialization) error {
	if f.replaced == nil {
		f.replaced = make(map[string][]models.Specialization)
	}
	f.replaced[providerID] = specializations
	return nil
}

type fakeAvailabilityService struct {
	invalidated []string
}

func (f *fakeAvailabilityService) ListDays(ctx context.Context, providerID, specializationName string) ([]models.DayKey, error) {
	return nil, nil
}

func (f *fakeAvailabilityService) ListSlots(ctx context.Context, providerID, specializationName string, day models.DayKey) ([]string, error) {
	return nil, nil
}

func (f *fakeAvailabilityService) Validate(ctx context.Context, providerID, specializationName string, day models.DayKey, timeSlot string) error {
	return nil
}

func (f *fakeAvailabilityService) InvalidateSchedule(ctx context.Context, providerID string) error {
	f.invalidated = append(f.invalidated, providerID)
	return nil
}

func newTestUsecase(users ...models.User) (*userUsecase, *fakeUserRepository, *fakeAvailabilityService) {
	repo := &fakeUserRepository{users: users}
	availabilityService := &fakeAvailabilityService{}
	uc := &userUsecase{
		UserRepository:      repo,
		AvailabilityService: availabilityService,
		Log:                 zap.NewNop(),
	}
	return uc, repo, availabilityService
}

func specialized(id, name string, specializations ...string) models.User {
	user := models.User{ID: id, Name: name, Role: constvars.UserRoleProvider}
	for _, specialization := range specializations {
		user.Specializations = append(user.Specializations, models.Specialization{Name: specialization})
	}
	return user
}

func TestFindProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("Without a filter, all providers in store order", func(t *testing.T) {
		uc, _, _ := newTestUsecase(
			specialized("dr-a", "Dr. A", "Dental"),
			specialized("dr-b", "Dr. B", "Surgery"),
			models.User{ID: "c1", Name: "Alice", Role: constvars.UserRoleClient},
		)

		response, err := uc.FindProviders(ctx, "")
		assert.NoError(t, err)
		if assert.Len(t, response, 2) {
			assert.Equal(t, "dr-a", response[0].ID)
			assert.Equal(t, "dr-b", response[1].ID)
		}
	})

	t.Run("Filter matches specialization names case-insensitively", func(t *testing.T) {
		uc, _, _ := newTestUsecase(
			specialized("dr-a", "Dr. A", "Dental Surgery", "Dermatology"),
			specialized("dr-b", "Dr. B", "Cardiology"),
		)

		response, err := uc.FindProviders(ctx, "dental")
		assert.NoError(t, err)
		if assert.Len(t, response, 1) {
			assert.Equal(t, "dr-a", response[0].ID)
			assert.Equal(t, []string{"Dental Surgery"}, response[0].Specializations, "only matching names are listed")
		}
	})
}

func TestReplaceSpecializations(t *testing.T) {
	ctx := context.Background()

	weekly := []models.Specialization{{
		Name: "Dental",
		Schedule: []models.ScheduleDay{
			{Day: "Monday", Slots: []string{"09:00"}},
		},
	}}

	t.Run("Replacement is stored and the schedule cache is invalidated", func(t *testing.T) {
		uc, repo, availabilityService := newTestUsecase(specialized("dr-a", "Dr. A"))

		err := uc.ReplaceSpecializations(ctx, "dr-a", weekly)
		assert.NoError(t, err)
		assert.Equal(t, weekly, repo.replaced["dr-a"])
		assert.Equal(t, []string{"dr-a"}, availabilityService.invalidated)
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		err := uc.ReplaceSpecializations(ctx, "nobody", weekly)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})

	t.Run("Clients cannot publish schedules", func(t *testing.T) {
		uc, repo, _ := newTestUsecase(models.User{ID: "c1", Role: constvars.UserRoleClient})

		err := uc.ReplaceSpecializations(ctx, "c1", weekly)
		assert.Error(t, err)
		assert.Empty(t, repo.replaced)
	})

	t.Run("A schedule mixing weekday and calendar-date keys is rejected", func(t *testing.T) {
		uc, repo, _ := newTestUsecase(specialized("dr-a", "Dr. A"))

		mixed := []models.Specialization{{
			Name: "Dental",
			Schedule: []models.ScheduleDay{
				{Day: "Monday", Slots: []string{"09:00"}},
				{Day: "2026-09-03", Slots: []string{"10:00"}},
			},
		}}

		err := uc.ReplaceSpecializations(ctx, "dr-a", mixed)
		customErr, ok := err.(*exceptions.CustomError)
		if assert.True(t, ok) {
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		}
		assert.Empty(t, repo.replaced)
	})
}
