package model

const (
	TableName         = "room"
	TableNameRoomType = "room_type"
	EntityName        = "room"
	EntityRoomType    = "room_type"

	FieldID                    = "id"
	FieldName                  = "name"
	FieldDescription           = "description"
	FieldRoomTypeID            = "room_type_id"
	FieldMaximumNumberOfGuests = "maximum_number_of_guests"

	// AnyRoomTypeID is never stored. It stands for "do not filter by type".
	AnyRoomTypeID   int64 = 0
	AnyRoomTypeName       = "Any"
)

type Room struct {
	ID          int64  `db:"id"           json:"id"`
	Name        string `db:"name"         json:"name"`
	Description string `db:"description"  json:"description"`
	// RoomTypeID is nil for an untyped room.
	RoomTypeID *int64 `db:"room_type_id" json:"room_type_id"`
}

type RoomType struct {
	ID                    int64  `db:"id"                       json:"id"`
	Name                  string `db:"name"                     json:"name"`
	Description           string `db:"description"              json:"description"`
	MaximumNumberOfGuests int    `db:"maximum_number_of_guests" json:"maximum_number_of_guests"`
}

func AnyRoomType() RoomType {
	return RoomType{ID: AnyRoomTypeID, Name: AnyRoomTypeName}
}

func (t RoomType) IsAny() bool {
	return t.ID == AnyRoomTypeID
}

// WithAny returns types with the "Any" sentinel in front.
func WithAny(types []RoomType) []RoomType {
	res := make([]RoomType, 0, len(types)+1)
	res = append(res, AnyRoomType())

	return append(res, types...)
}
