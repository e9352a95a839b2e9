package model

import "time"

const (
	TableName  = "booking"
	EntityName = "booking"

	FieldID          = "id"
	FieldCheckin     = "checkin"
	FieldCheckout    = "checkout"
	FieldCancelledAt = "cancelled_at"
	FieldSurname     = "surname"
	FieldForename    = "forename"
)

// Booking is one stay together with its responsible person.
type Booking struct {
	ID          int64      `db:"id"`
	Checkin     time.Time  `db:"checkin"`
	Checkout    time.Time  `db:"checkout"`
	CancelledAt *time.Time `db:"cancelled_at"`
	Surname     string     `db:"surname"      table:"person"`
	Forename    string     `db:"forename"     table:"person"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN booking_person ON booking_person.booking_id = booking.id AND booking_person.is_responsible = TRUE " +
		"JOIN person ON person.id = booking_person.person_id"
}

func (b Booking) Cancelled() bool {
	return b.CancelledAt != nil
}
