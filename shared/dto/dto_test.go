package dto_test

import (
	"frontdesk/shared/dto"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.QueryParams
		total     int
		wantPages int
	}{
		{name: "exact pages", params: dto.QueryParams{Page: 1, Limit: 10}, total: 30, wantPages: 3},
		{name: "partial last page", params: dto.QueryParams{Page: 2, Limit: 10}, total: 31, wantPages: 4},
		{name: "no data", params: dto.QueryParams{Page: 1, Limit: 10}, total: 0, wantPages: 1},
		{name: "no limit", params: dto.QueryParams{}, total: 12, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dto.NewPagination(tt.params, tt.total)

			assert.Equal(t, dto.Pagination{
				Page:      tt.params.Page,
				Limit:     tt.params.Limit,
				TotalPage: tt.wantPages,
				TotalData: tt.total,
			}, p)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.GreaterEq("booking", "checkin", "from", "2024-05-01"),
		dto.LessEq("booking", "checkout", "to", "2024-05-31"),
		dto.Plain(
			"room.id NOT IN (SELECT room_id FROM booking_room WHERE booking_id = :booking)",
			map[string]any{"booking": 7},
		),
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters:  []any{dto.Eq("booking", "id", int64(1)), dto.Eq("booking", "room", int64(2))},
		},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(booking.checkin >= :from AND booking.checkout <= :to AND "+
		"(room.id NOT IN (SELECT room_id FROM booking_room WHERE booking_id = :booking)) AND "+
		"(booking.id = :id OR booking.room = :room))", where)
	assert.Equal(t, map[string]any{
		"from": "2024-05-01", "to": "2024-05-31", "booking": 7, "id": int64(1), "room": int64(2),
	}, args)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq without table",
			filter:    dto.Eq("", "room_type_id", int64(2)),
			wantWhere: "room_type_id = :room_type_id",
			wantArgs:  map[string]any{"room_type_id": int64(2)},
		},
		{
			name:      "named bound",
			filter:    dto.LessEq("booking", "checkout", "to", "2024-05-31"),
			wantWhere: "booking.checkout <= :to",
			wantArgs:  map[string]any{"to": "2024-05-31"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_SkipsEmptyClauses(t *testing.T) {
	group := dto.FilterGroup{}
	group.Add(dto.Filter{Field: "name", Operator: "like"}, dto.And(), "not a filter")

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)

	group.Add(dto.Eq("inquiry", "id", int64(6)))

	where, _ = group.GetWhereClause()
	assert.Equal(t, "(inquiry.id = :id)", where)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		defaults bool
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=surname&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "surname", SortDir: dto.SortDirDesc},
		},
		{
			name:     "nothing without defaults",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:     "defaults",
			query:    "",
			defaults: true,
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "malformed numbers fall back",
			query:    "page=two&limit=-5",
			defaults: true,
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:     "unknown direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var params dto.QueryParams
			params.FromRequest(httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil), tt.defaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 3}.Offset())
}
