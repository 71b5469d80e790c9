package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "room_id"
	FieldRoomType = "room_type"
)

// Room is fixed inventory. Rooms are seeded by migrations and only read here.
type Room struct {
	ID            int64   `db:"room_id"`
	RoomType      string  `db:"room_type"`
	PricePerNight float64 `db:"price_per_night" table:"room_types"`
}

func (Room) GetJoinQuery() string {
	return "JOIN room_types ON room_types.room_type = rooms.room_type"
}
