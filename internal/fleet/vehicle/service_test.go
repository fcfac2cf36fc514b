// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package vehicle_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangphan/fleetra/internal/fleet/vehicle"
	"github.com/quangphan/fleetra/internal/platform/apperr"
)

// memoryRepo is an in-memory Repository enforcing per-owner plate uniqueness
// the way the database constraint does.
type memoryRepo struct {
	vehicles map[string]*vehicle.Vehicle
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{vehicles: make(map[string]*vehicle.Vehicle)}
}

func (repo *memoryRepo) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*vehicle.Vehicle, int, error) {
	matched := make([]*vehicle.Vehicle, 0)
	for _, v := range repo.vehicles {
		if v.OwnerID == ownerID {
			matched = append(matched, v)
		}
	}
	return matched, len(matched), nil
}

func (repo *memoryRepo) FindByID(_ context.Context, ownerID, id string) (*vehicle.Vehicle, error) {
	if v, ok := repo.vehicles[id]; ok && v.OwnerID == ownerID {
		copied := *v
		return &copied, nil
	}
	return nil, apperr.NotFound("Vehicle")
}

func (repo *memoryRepo) Create(_ context.Context, v *vehicle.Vehicle) error {
	for _, existing := range repo.vehicles {
		if existing.OwnerID == v.OwnerID && existing.Plate == v.Plate {
			return apperr.Conflict("Vehicle already exists")
		}
	}
	copied := *v
	repo.vehicles[v.ID] = &copied
	return nil
}

func (repo *memoryRepo) Update(_ context.Context, v *vehicle.Vehicle) error {
	if _, ok := repo.vehicles[v.ID]; !ok {
		return apperr.NotFound("Vehicle")
	}
	copied := *v
	repo.vehicles[v.ID] = &copied
	return nil
}

func (repo *memoryRepo) Delete(_ context.Context, ownerID, id string) error {
	if v, ok := repo.vehicles[id]; ok && v.OwnerID == ownerID {
		delete(repo.vehicles, id)
		return nil
	}
	return apperr.NotFound("Vehicle")
}

func newService() (*vehicle.Service, *memoryRepo) {
	repo := newMemoryRepo()
	return vehicle.NewService(repo, slog.Default()), repo
}

/*
TestService_CreateVehicle verifies defaults and plate canonicalization.
*/
func TestService_CreateVehicle(t *testing.T) {
	service, _ := newService()

	created := &vehicle.Vehicle{OwnerID: "owner-1", Plate: "ab-1234 c", MileageKm: 1200}
	require.NoError(t, service.CreateVehicle(context.Background(), created))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "AB1234C", created.Plate)
	assert.Equal(t, vehicle.StatusActive, created.Status)
}

/*
TestService_CreateVehicle_DuplicatePlate verifies visually-different spellings
of the same plate collide under one owner but not across owners.
*/
func TestService_CreateVehicle_DuplicatePlate(t *testing.T) {
	service, _ := newService()

	require.NoError(t, service.CreateVehicle(context.Background(),
		&vehicle.Vehicle{OwnerID: "owner-1", Plate: "AB 1234C"}))

	err := service.CreateVehicle(context.Background(),
		&vehicle.Vehicle{OwnerID: "owner-1", Plate: "ab-1234-c"})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)

	// A different owner may register the same plate.
	assert.NoError(t, service.CreateVehicle(context.Background(),
		&vehicle.Vehicle{OwnerID: "owner-2", Plate: "AB 1234C"}))
}

/*
TestService_CreateVehicle_Validation verifies attribute rules.
*/
func TestService_CreateVehicle_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *vehicle.Vehicle
	}{
		{"empty_plate", &vehicle.Vehicle{OwnerID: "owner-1", Plate: "---"}},
		{"unknown_status", &vehicle.Vehicle{OwnerID: "owner-1", Plate: "AB1", Status: "scrapped"}},
		{"negative_mileage", &vehicle.Vehicle{OwnerID: "owner-1", Plate: "AB1", MileageKm: -5}},
	}

	service, _ := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateVehicle(context.Background(), tt.input)
			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		})
	}
}

/*
TestService_UpdateVehicle verifies owner scoping and re-canonicalization.
*/
func TestService_UpdateVehicle(t *testing.T) {
	service, _ := newService()

	created := &vehicle.Vehicle{OwnerID: "owner-1", Plate: "AB1234C"}
	require.NoError(t, service.CreateVehicle(context.Background(), created))

	t.Run("other_owner_sees_not_found", func(t *testing.T) {
		err := service.UpdateVehicle(context.Background(), &vehicle.Vehicle{
			ID: created.ID, OwnerID: "owner-2", Plate: "XY999", Status: vehicle.StatusActive,
		})
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	})

	t.Run("plate_is_normalized", func(t *testing.T) {
		updated := &vehicle.Vehicle{
			ID: created.ID, OwnerID: "owner-1", Plate: "xy-999", Status: vehicle.StatusMaintenance,
		}
		require.NoError(t, service.UpdateVehicle(context.Background(), updated))
		assert.Equal(t, "XY999", updated.Plate)
	})
}
