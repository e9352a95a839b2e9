package dto

import (
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	connectionDto "frontdesk/internal/domains/connection/model/dto"
	inquiryDto "frontdesk/internal/domains/inquiry/model/dto"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
	"time"
)

// DateFieldRequest is the body of PUT /v1/desk/timeframes/{timeframeID}/{field}. An empty date
// clears the field.
type DateFieldRequest struct {
	Date string `json:"date" validate:"omitempty,day"`
}

func (r *DateFieldRequest) Day() (*time.Time, error) {
	if r.Date == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	day, err := timezone.Parse(constant.DateFormat, r.Date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &day, nil
}

type RoomTypeRequest struct {
	RoomTypeID *int64 `json:"room_type_id" validate:"required,min=0"`
}

type TimeframeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func NewTimeframeResponse(rng daterange.Range) TimeframeResponse {
	return TimeframeResponse{From: rng.FromString(), To: rng.ToString()}
}

// Snapshot is everything the operator sees on the desk.
type Snapshot struct {
	Connection       connectionDto.StateResponse        `json:"connection"`
	Timeframes       map[timeframe.ID]TimeframeResponse `json:"timeframes"`
	RoomTypes        []roomDto.RoomTypeResponse         `json:"room_types"`
	SelectedRoomType int64                              `json:"selected_room_type_id"`
	MatchedGroup     string                             `json:"matched_group"`
	Bookings         []bookingDto.BookingResponse       `json:"bookings"`
	AvailableRooms   []roomDto.RoomResponse             `json:"available_rooms"`
	Inquiries        []inquiryDto.InquiryResponse       `json:"inquiries"`
}
