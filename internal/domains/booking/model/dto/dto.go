package dto

import (
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

var sortColumns = map[string]string{
	model.FieldID:       model.TableName + "." + model.FieldID,
	model.FieldCheckin:  model.TableName + "." + model.FieldCheckin,
	model.FieldCheckout: model.TableName + "." + model.FieldCheckout,
	model.FieldSurname:  "person." + model.FieldSurname,
}

// GetBookingsRequest is the query of GET /v1/bookings.
type GetBookingsRequest struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to"   validate:"omitempty,datetime=2006-01-02"`
	gDto.QueryParams
}

func (r *GetBookingsRequest) Range() (daterange.Range, error) {
	return daterange.Parse(r.From, r.To) //nolint:wrapcheck
}

// Params maps the public sort key onto a column. Unknown keys fall back to checkin.
func (r *GetBookingsRequest) Params() gDto.QueryParams {
	params := r.QueryParams

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = sortColumns[model.FieldCheckin]
	}

	params.SortBy = column

	if params.SortDir == constant.Empty {
		params.SortDir = constant.DefaultValueSortDir
	}

	return params
}

type BookingResponse struct {
	ID          int64   `json:"id"`
	Checkin     string  `json:"checkin"`
	Checkout    string  `json:"checkout"`
	CancelledAt *string `json:"cancelled_at"`
	Cancelled   bool    `json:"cancelled"`
	Surname     string  `json:"surname"`
	Forename    string  `json:"forename"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Checkin = timezone.FormatDay(m.Checkin, constant.DateFormat)
	r.Checkout = timezone.FormatDay(m.Checkout, constant.DateFormat)
	r.Cancelled = m.Cancelled()
	r.CancelledAt = nil

	if m.CancelledAt != nil {
		cancelledAt := timezone.Format(*m.CancelledAt, constant.TimeFormat)
		r.CancelledAt = &cancelledAt
	}

	r.Surname = m.Surname
	r.Forename = m.Forename
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination gDto.Pagination   `json:"pagination"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData int, params gDto.QueryParams) {
	r.Bookings = FromModels(models)
	r.Pagination = gDto.NewPagination(params, totalData)
}
