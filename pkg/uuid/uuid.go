// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package uuid generates the version 7 identifiers used for every fleet
// record key. Account ids are the one exception: reserved identities such as
// the demo account use fixed non-UUID strings.
package uuid

import "github.com/google/uuid"

// New returns a fresh UUIDv7 string. Time-ordered values keep the Postgres
// primary key indexes append-mostly.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion; nothing sensible to return.
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}
