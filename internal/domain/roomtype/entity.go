package roomtype

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("room type name cannot be empty")
	ErrNameTooLong      = errors.New("room type name is too long (max 100 characters)")
	ErrInvalidInventory = errors.New("total rooms must be at least 1")
)

const MaxNameLength = 100

// RoomType is a class of physical rooms sharing one inventory count.
// Packages reference it; they never own it.
type RoomType struct {
	id          uuid.UUID
	name        string
	totalRooms  int
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoomType(id uuid.UUID, name string, totalRooms int, description string) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if totalRooms < 1 {
		return nil, ErrInvalidInventory
	}

	return &RoomType{
		id:          id,
		name:        name,
		totalRooms:  totalRooms,
		description: strings.TrimSpace(description),
	}, nil
}

func ReconstructRoomType(id uuid.UUID, name string, totalRooms int, description string, createdAt, updatedAt time.Time) *RoomType {
	return &RoomType{
		id:          id,
		name:        name,
		totalRooms:  totalRooms,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (rt *RoomType) ID() uuid.UUID        { return rt.id }
func (rt *RoomType) Name() string         { return rt.name }
func (rt *RoomType) TotalRooms() int      { return rt.totalRooms }
func (rt *RoomType) Description() string  { return rt.description }
func (rt *RoomType) CreatedAt() time.Time { return rt.createdAt }
func (rt *RoomType) UpdatedAt() time.Time { return rt.updatedAt }
