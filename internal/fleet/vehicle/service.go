// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package vehicle

import (
	"context"
	"log/slog"

	"github.com/quangphan/fleetra/internal/platform/validate"
	"github.com/quangphan/fleetra/pkg/plate"
	"github.com/quangphan/fleetra/pkg/uuid"
)

const (
	FieldPlate     = "plate"
	FieldLabel     = "label"
	FieldStatus    = "status"
	FieldMileageKm = "mileageKm"
)

// # Service Layer

// Service orchestrates the business logic for fleet vehicles.
type Service struct {
	vehicleRepo Repository
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(vehicleRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// # Vehicle Operations

func (service *Service) ListVehicles(context context.Context, ownerID string, limit, offset int) ([]*Vehicle, int, error) {
	return service.vehicleRepo.ListByOwner(context, ownerID, limit, offset)
}

func (service *Service) GetVehicle(context context.Context, ownerID, id string) (*Vehicle, error) {
	return service.vehicleRepo.FindByID(context, ownerID, id)
}

/*
CreateVehicle registers a new truck under the owner's fleet.

Description: Canonicalizes the plate, applies business validation, and
persists the vehicle. A duplicate canonical plate under the same owner
surfaces as a Conflict from the storage layer.

Parameters:
  - context: context.Context
  - vehicle: *Vehicle (OwnerID must already be set from the session)

Returns:
  - error: Validation, Conflict, or persistence errors
*/
func (service *Service) CreateVehicle(context context.Context, vehicle *Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.New()
	}
	if vehicle.Status == "" {
		vehicle.Status = StatusActive
	}
	vehicle.Plate = plate.Normalize(vehicle.Plate)

	if err := service.validateAttributes(vehicle); err != nil {
		return err
	}

	return service.vehicleRepo.Create(context, vehicle)
}

/*
UpdateVehicle modifies an existing truck's attributes.

Description: Loads the current row under the owner's scope (404 when it is
not theirs), applies the changes, and persists. Plate changes re-run
canonicalization and are subject to the same uniqueness constraint.
*/
func (service *Service) UpdateVehicle(context context.Context, vehicle *Vehicle) error {
	existing, err := service.vehicleRepo.FindByID(context, vehicle.OwnerID, vehicle.ID)
	if err != nil {
		return err
	}

	vehicle.CreatedAt = existing.CreatedAt
	vehicle.Plate = plate.Normalize(vehicle.Plate)

	if err := service.validateAttributes(vehicle); err != nil {
		return err
	}

	return service.vehicleRepo.Update(context, vehicle)
}

func (service *Service) DeleteVehicle(context context.Context, ownerID, id string) error {
	return service.vehicleRepo.Delete(context, ownerID, id)
}

// validateAttributes enforces the shared invariants for create and update.
func (service *Service) validateAttributes(vehicle *Vehicle) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldPlate, vehicle.Plate).
		MaxLen(FieldPlate, vehicle.Plate, 16).
		MaxLen(FieldLabel, vehicle.Label, 100).
		OneOf(FieldStatus, vehicle.Status, Statuses...).
		NonNegative(FieldMileageKm, vehicle.MileageKm)
	return validator.Err()
}
