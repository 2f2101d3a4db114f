package commands

import (
	"context"

	"hotelhub/internal/domain/roomtype"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomTypeExists = errs.New("room type already exists")

type CreateRoomTypeParams struct {
	Name        string
	TotalRooms  int
	Description string
}

type RoomTypeCommands interface {
	CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (uuid.UUID, error)
}

type roomTypeCommandsImpl struct {
	roomTypeRepo RoomTypeRepository
}

func NewRoomTypeCommands(roomTypeRepo RoomTypeRepository) RoomTypeCommands {
	return &roomTypeCommandsImpl{roomTypeRepo: roomTypeRepo}
}

func (c *roomTypeCommandsImpl) CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (uuid.UUID, error) {
	rt, err := roomtype.NewRoomType(uuid.New(), params.Name, params.TotalRooms, params.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err = c.roomTypeRepo.FindByName(ctx, rt.Name()); err == nil {
		return uuid.Nil, ErrRoomTypeExists
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	id, err := c.roomTypeRepo.Create(ctx, rt)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrRoomTypeExists
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return id, nil
}
