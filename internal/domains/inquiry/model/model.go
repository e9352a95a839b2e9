package model

import "time"

const (
	TableName  = "inquiry"
	EntityName = "inquiry"

	FieldID       = "id"
	FieldDateFrom = "date_from"
)

// Inquiry is a group's request for rooms over a date range, not yet turned into a booking.
type Inquiry struct {
	ID               int64      `db:"id"`
	GroupName        string     `db:"group_name"`
	From             time.Time  `db:"date_from"`
	To               time.Time  `db:"date_to"`
	NumberOfGuests   int        `db:"number_of_guests"`
	CreatedAt        time.Time  `db:"created_at"`
	ReservationUntil *time.Time `db:"reservation_until"`
	CancelledAt      *time.Time `db:"cancelled_at"`
	PersonID         *int64     `db:"person_id"`
}

func (i Inquiry) Cancelled() bool {
	return i.CancelledAt != nil
}
