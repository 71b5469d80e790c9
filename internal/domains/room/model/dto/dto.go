package dto

import "hotel/internal/domains/room/model"

type RoomResponse struct {
	ID            int64   `json:"Room_ID"`
	RoomType      string  `json:"Room_Type"`
	PricePerNight float64 `json:"Price_per_Night"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomType = room.RoomType
	r.PricePerNight = room.PricePerNight
}

func FromModels(rooms []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res
}
