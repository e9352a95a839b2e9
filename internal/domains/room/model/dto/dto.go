package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/daterange"
)

// AvailableRoomsRequest is the query of GET /v1/rooms/available.
type AvailableRoomsRequest struct {
	From       string `json:"from"         validate:"required,datetime=2006-01-02"`
	To         string `json:"to"           validate:"required,datetime=2006-01-02"`
	RoomTypeID int64  `json:"room_type_id" validate:"omitempty,min=0"`
}

func (r *AvailableRoomsRequest) Range() (daterange.Range, error) {
	return daterange.Parse(r.From, r.To) //nolint:wrapcheck
}

func (r *AvailableRoomsRequest) RoomType() model.RoomType {
	if r.RoomTypeID == model.AnyRoomTypeID {
		return model.AnyRoomType()
	}

	return model.RoomType{ID: r.RoomTypeID}
}

type RoomResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RoomTypeID  *int64 `json:"room_type_id"`
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.RoomTypeID = m.RoomTypeID
}

type AvailableRoomsResponse struct {
	From       string         `json:"from"`
	To         string         `json:"to"`
	RoomTypeID int64          `json:"room_type_id"`
	Rooms      []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(rng daterange.Range, roomType model.RoomType, models []model.Room) {
	r.From = rng.FromString()
	r.To = rng.ToString()
	r.RoomTypeID = roomType.ID

	r.Rooms = make([]RoomResponse, len(models))
	for i, m := range models {
		r.Rooms[i].FromModel(m)
	}
}

type RoomTypeResponse struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	MaximumNumberOfGuests int    `json:"maximum_number_of_guests"`
}

func (r *RoomTypeResponse) FromModel(m model.RoomType) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.MaximumNumberOfGuests = m.MaximumNumberOfGuests
}

func RoomTypesFromModels(models []model.RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
