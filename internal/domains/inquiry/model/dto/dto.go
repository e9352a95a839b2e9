package dto

import (
	"frontdesk/internal/domains/inquiry/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"time"
)

type InquiryResponse struct {
	ID               int64   `json:"id"`
	GroupName        string  `json:"group_name"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	NumberOfGuests   int     `json:"number_of_guests"`
	CreatedAt        string  `json:"created_at"`
	ReservationUntil *string `json:"reservation_until"`
	CancelledAt      *string `json:"cancelled_at"`
	PersonID         *int64  `json:"person_id"`
}

func (r *InquiryResponse) FromModel(m model.Inquiry) {
	r.ID = m.ID
	r.GroupName = m.GroupName
	r.From = timezone.FormatDay(m.From, constant.DateFormat)
	r.To = timezone.FormatDay(m.To, constant.DateFormat)
	r.NumberOfGuests = m.NumberOfGuests
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.TimeFormat)
	r.ReservationUntil = formatOptional(m.ReservationUntil, timezone.FormatDay, constant.DateFormat)
	r.CancelledAt = formatOptional(m.CancelledAt, timezone.Format, constant.TimeFormat)
	r.PersonID = m.PersonID
}

func FromModels(models []model.Inquiry) []InquiryResponse {
	res := make([]InquiryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func formatOptional(t *time.Time, format func(time.Time, string) string, layout string) *string {
	if t == nil {
		return nil
	}

	value := format(*t, layout)

	return &value
}
