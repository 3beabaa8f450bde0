package service

import (
	"context"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// CapacityGuard loads a room with its current occupants.
type CapacityGuard struct {
	rooms RoomStore
}

// NewCapacityGuard constructs a CapacityGuard.
func NewCapacityGuard(rooms RoomStore) *CapacityGuard {
	return &CapacityGuard{rooms: rooms}
}

// Check returns the room with its occupants, or NotFound. Admission is
// decided by the caller from OccupantCount and Capacity.
func (g *CapacityGuard) Check(ctx context.Context, roomID string) (*model.Room, error) {
	return g.rooms.FindWithOccupants(ctx, roomID)
}
