package team

import (
	"context"
	"log/slog"

	"github.com/quangphan/fleetra/internal/platform/validate"
	"github.com/quangphan/fleetra/pkg/uuid"
)

const (
	FieldName   = "name"
	FieldRegion = "region"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTeams(context context.Context, ownerID string) ([]*Team, error) {
	return service.repo.ListByOwner(context, ownerID)
}

func (service *Service) GetTeam(context context.Context, ownerID, id string) (*Team, error) {
	return service.repo.FindByID(context, ownerID, id)
}

func (service *Service) CreateTeam(context context.Context, team *Team) error {
	if team.ID == "" {
		team.ID = uuid.New()
	}

	if err := validateAttributes(team); err != nil {
		return err
	}

	return service.repo.Create(context, team)
}

func (service *Service) UpdateTeam(context context.Context, team *Team) error {
	existing, err := service.repo.FindByID(context, team.OwnerID, team.ID)
	if err != nil {
		return err
	}
	team.CreatedAt = existing.CreatedAt

	if err := validateAttributes(team); err != nil {
		return err
	}

	return service.repo.Update(context, team)
}

func (service *Service) DeleteTeam(context context.Context, ownerID, id string) error {
	return service.repo.Delete(context, ownerID, id)
}

func validateAttributes(team *Team) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, team.Name).
		MaxLen(FieldName, team.Name, 100).
		MaxLen(FieldRegion, team.Region, 100)
	return validator.Err()
}
