package team

import "context"

type Repository interface {
	ListByOwner(context context.Context, ownerID string) ([]*Team, error)
	FindByID(context context.Context, ownerID, id string) (*Team, error)
	Create(context context.Context, team *Team) error
	Update(context context.Context, team *Team) error
	Delete(context context.Context, ownerID, id string) error
}
