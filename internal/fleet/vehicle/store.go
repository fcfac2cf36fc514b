// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package vehicle

import "context"

// Repository defines the data access contract for vehicles.
// Every method is scoped by ownerID.
type Repository interface {
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Vehicle, int, error)
	FindByID(context context.Context, ownerID, id string) (*Vehicle, error)
	Create(context context.Context, vehicle *Vehicle) error
	Update(context context.Context, vehicle *Vehicle) error
	Delete(context context.Context, ownerID, id string) error
}
