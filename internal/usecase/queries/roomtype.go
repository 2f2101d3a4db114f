package queries

import "context"

type RoomTypeReadStore interface {
	ListAll(ctx context.Context) ([]*RoomTypeView, error)
}

type RoomTypeQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	roomTypes RoomTypeReadStore
}

func NewRoomTypeQueries(roomTypes RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{roomTypes: roomTypes}
}

func (q *roomTypeQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.roomTypes.ListAll(ctx)
}
