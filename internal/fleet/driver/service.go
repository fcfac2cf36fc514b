// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package driver

import (
	"context"
	"log/slog"

	"github.com/quangphan/fleetra/internal/platform/validate"
	"github.com/quangphan/fleetra/pkg/uuid"
)

const (
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldLicenseNo = "licenseNo"
	FieldTeamID    = "teamId"
	FieldVehicleID = "vehicleId"
)

type Service struct {
	driverRepo Repository
	logger     *slog.Logger
}

func NewService(driverRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

func (service *Service) ListDrivers(context context.Context, ownerID string, limit, offset int) ([]*Driver, int, error) {
	return service.driverRepo.ListByOwner(context, ownerID, limit, offset)
}

func (service *Service) GetDriver(context context.Context, ownerID, id string) (*Driver, error) {
	return service.driverRepo.FindByID(context, ownerID, id)
}

func (service *Service) CreateDriver(context context.Context, driver *Driver) error {
	if driver.ID == "" {
		driver.ID = uuid.New()
	}

	if err := validateAttributes(driver); err != nil {
		return err
	}

	return service.driverRepo.Create(context, driver)
}

// UpdateDriver replaces the driver's attributes, including clearing an
// assignment by sending a null teamId or vehicleId.
func (service *Service) UpdateDriver(context context.Context, driver *Driver) error {
	existing, err := service.driverRepo.FindByID(context, driver.OwnerID, driver.ID)
	if err != nil {
		return err
	}
	driver.CreatedAt = existing.CreatedAt

	if err := validateAttributes(driver); err != nil {
		return err
	}

	return service.driverRepo.Update(context, driver)
}

func (service *Service) DeleteDriver(context context.Context, ownerID, id string) error {
	return service.driverRepo.Delete(context, ownerID, id)
}

func validateAttributes(driver *Driver) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, driver.Name).
		MaxLen(FieldName, driver.Name, 200).
		Required(FieldPhone, driver.Phone).
		MaxLen(FieldLicenseNo, driver.LicenseNo, 50)
	if driver.TeamID != nil {
		validator.UUID(FieldTeamID, *driver.TeamID)
	}
	if driver.VehicleID != nil {
		validator.UUID(FieldVehicleID, *driver.VehicleID)
	}
	return validator.Err()
}
