package team

import "time"

// Team groups drivers under a dispatch region.
type Team struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"createdAt"`

	// DriverCount is populated by list queries, not stored.
	DriverCount int `json:"driverCount"`
}
