package contracts

import (
	"context"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	// FindByID returns (nil, nil) when no user carries the given id.
	FindByID(ctx context.Context, userID string) (*models.User, error)
	// FindProviders returns every user with the provider role in store
	// enumeration order. The emergency match engine depends on that order
	// being deterministic.
	FindProviders(ctx context.Context) ([]models.User, error)
	ReplaceSpecializations(ctx context.Context, providerID string, specializations []models.Specialization) error
}

type UserUsecase interface {
	FindProviders(ctx context.Context, specializationFilter string) ([]responses.Provider, error)
	ReplaceSpecializations(ctx context.Context, providerID string, specializations []models.Specialization) error
}
