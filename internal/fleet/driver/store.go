// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package driver

import "context"

// Repository defines the data access contract for drivers, scoped by owner.
type Repository interface {
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Driver, int, error)
	FindByID(context context.Context, ownerID, id string) (*Driver, error)
	Create(context context.Context, driver *Driver) error
	Update(context context.Context, driver *Driver) error
	Delete(context context.Context, ownerID, id string) error
}
