// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package driver_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangphan/fleetra/internal/fleet/driver"
	"github.com/quangphan/fleetra/internal/platform/apperr"
	"github.com/quangphan/fleetra/pkg/pointer"
	"github.com/quangphan/fleetra/pkg/uuid"
)

type memoryRepo struct {
	drivers map[string]*driver.Driver
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{drivers: make(map[string]*driver.Driver)}
}

func (repo *memoryRepo) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*driver.Driver, int, error) {
	matched := make([]*driver.Driver, 0)
	for _, d := range repo.drivers {
		if d.OwnerID == ownerID {
			matched = append(matched, d)
		}
	}
	return matched, len(matched), nil
}

func (repo *memoryRepo) FindByID(_ context.Context, ownerID, id string) (*driver.Driver, error) {
	if d, ok := repo.drivers[id]; ok && d.OwnerID == ownerID {
		copied := *d
		return &copied, nil
	}
	return nil, apperr.NotFound("Driver")
}

func (repo *memoryRepo) Create(_ context.Context, d *driver.Driver) error {
	copied := *d
	repo.drivers[d.ID] = &copied
	return nil
}

func (repo *memoryRepo) Update(_ context.Context, d *driver.Driver) error {
	if _, ok := repo.drivers[d.ID]; !ok {
		return apperr.NotFound("Driver")
	}
	copied := *d
	repo.drivers[d.ID] = &copied
	return nil
}

func (repo *memoryRepo) Delete(_ context.Context, ownerID, id string) error {
	if d, ok := repo.drivers[id]; ok && d.OwnerID == ownerID {
		delete(repo.drivers, id)
		return nil
	}
	return apperr.NotFound("Driver")
}

/*
TestService_CreateDriver verifies required fields and assignment validation.
*/
func TestService_CreateDriver(t *testing.T) {
	service := driver.NewService(newMemoryRepo(), slog.Default())

	t.Run("unassigned", func(t *testing.T) {
		created := &driver.Driver{OwnerID: "owner-1", Name: "Minh Tran", Phone: "555-0123"}
		require.NoError(t, service.CreateDriver(context.Background(), created))
		assert.NotEmpty(t, created.ID)
		assert.Nil(t, created.TeamID)
		assert.Nil(t, created.VehicleID)
	})

	t.Run("with_assignments", func(t *testing.T) {
		created := &driver.Driver{
			OwnerID:   "owner-1",
			Name:      "Lan Pham",
			Phone:     "555-0124",
			TeamID:    pointer.To(uuid.New()),
			VehicleID: pointer.To(uuid.New()),
		}
		assert.NoError(t, service.CreateDriver(context.Background(), created))
	})

	t.Run("missing_name", func(t *testing.T) {
		err := service.CreateDriver(context.Background(),
			&driver.Driver{OwnerID: "owner-1", Phone: "555-0125"})
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	})

	t.Run("malformed_assignment_id", func(t *testing.T) {
		err := service.CreateDriver(context.Background(), &driver.Driver{
			OwnerID: "owner-1",
			Name:    "Huy Le",
			Phone:   "555-0126",
			TeamID:  pointer.To("not-a-uuid"),
		})
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	})
}

/*
TestService_UpdateDriver_Unassign verifies a nil assignment clears the link.
*/
func TestService_UpdateDriver_Unassign(t *testing.T) {
	service := driver.NewService(newMemoryRepo(), slog.Default())

	created := &driver.Driver{
		OwnerID: "owner-1",
		Name:    "Minh Tran",
		Phone:   "555-0123",
		TeamID:  pointer.To(uuid.New()),
	}
	require.NoError(t, service.CreateDriver(context.Background(), created))

	updated := &driver.Driver{
		ID:      created.ID,
		OwnerID: "owner-1",
		Name:    created.Name,
		Phone:   created.Phone,
		TeamID:  nil,
	}
	require.NoError(t, service.UpdateDriver(context.Background(), updated))

	fetched, err := service.GetDriver(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.TeamID)

	// Ownership scoping still applies.
	_, err = service.GetDriver(context.Background(), "owner-2", created.ID)
	require.Error(t, err)
}
