package repository_test

import (
	"context"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	pgMocks "frontdesk/infras/postgres/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var roomColumns = []string{"id", "name", "description", "room_type_id"}

func newRepo(t *testing.T, overlap daterange.Overlap) (repository.Room, sqlmock.Sqlmock) {
	t.Helper()

	ctrl := gomock.NewController(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	provider := pgMocks.NewMockProvider(ctrl)
	provider.EXPECT().DB().Return(sqlx.NewDb(db, "postgres"), nil).AnyTimes()

	return repository.New(provider, overlap, mocks.NewOtel()), mock
}

func may(from, to int) daterange.Range {
	return daterange.Between(timezone.Date(2024, time.May, from), timezone.Date(2024, time.May, to))
}

func TestRoom_AvailableInterval(t *testing.T) {
	repo, mock := newRepo(t, daterange.OverlapInterval)

	mock.ExpectPrepare(
		regexp.QuoteMeta("SELECT room.id, room.name, room.description, room.room_type_id FROM room")+
			".*"+regexp.QuoteMeta("WHERE booking.cancelled_at IS NULL AND (booking.checkin <= $1 AND booking.checkout >= $2)")+
			".*"+regexp.QuoteMeta("JOIN inquiry ON inquiry.id = inquiry_room.inquiry_id")+
			".*"+regexp.QuoteMeta("WHERE inquiry.cancelled_at IS NULL AND (inquiry.date_from <= $3 AND inquiry.date_to >= $4)")+
			".*"+regexp.QuoteMeta("ORDER BY room.id ASC"),
	).
		ExpectQuery().
		WithArgs("2024-05-10", "2024-05-01", "2024-05-10", "2024-05-01").
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow(1, "101", "", 1).
			AddRow(3, "103", "sea view", nil))

	rooms, err := repo.Available(context.Background(), may(1, 10), model.AnyRoomTypeID)

	require.NoError(t, err)

	typeID := int64(1)
	assert.Equal(t, []model.Room{
		{ID: 1, Name: "101", RoomTypeID: &typeID},
		{ID: 3, Name: "103", Description: "sea view"},
	}, rooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoom_AvailableEndpointWithType(t *testing.T) {
	repo, mock := newRepo(t, daterange.OverlapEndpoint)

	mock.ExpectPrepare(
		regexp.QuoteMeta("((booking.checkin >= $1 AND booking.checkin <= $2) OR (booking.checkout >= $3 AND booking.checkout <= $4))")+
			".*"+regexp.QuoteMeta("((inquiry.date_from >= $5 AND inquiry.date_from <= $6) OR (inquiry.date_to >= $7 AND inquiry.date_to <= $8))")+
			".*"+regexp.QuoteMeta("AND room.room_type_id = $9"),
	).
		ExpectQuery().
		WithArgs(
			"2024-05-01", "2024-05-10", "2024-05-01", "2024-05-10",
			"2024-05-01", "2024-05-10", "2024-05-01", "2024-05-10",
			int64(2),
		).
		WillReturnRows(sqlmock.NewRows(roomColumns))

	rooms, err := repo.Available(context.Background(), may(1, 10), 2)

	require.NoError(t, err)
	assert.Empty(t, rooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoom_AvailableUnbounded(t *testing.T) {
	repo, mock := newRepo(t, daterange.OverlapInterval)

	from := timezone.Date(2024, time.May, 1)

	_, err := repo.Available(context.Background(), daterange.New(&from, nil), model.AnyRoomTypeID)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement is prepared")
}

func TestRoom_RoomTypes(t *testing.T) {
	repo, mock := newRepo(t, daterange.OverlapInterval)

	mock.ExpectPrepare(regexp.QuoteMeta(
		"SELECT room_type.id, room_type.name, room_type.description, room_type.maximum_number_of_guests FROM room_type",
	) + ".*" + regexp.QuoteMeta("ORDER BY room_type.id ASC")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "maximum_number_of_guests"}).
			AddRow(1, "Single", "one bed", 1).
			AddRow(2, "Double", "two beds", 2))

	types, err := repo.RoomTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.RoomType{
		{ID: 1, Name: "Single", Description: "one bed", MaximumNumberOfGuests: 1},
		{ID: 2, Name: "Double", Description: "two beds", MaximumNumberOfGuests: 2},
	}, types)
}

func TestRoom_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := pgMocks.NewMockProvider(ctrl)
	provider.EXPECT().DB().Return(nil, postgres.ErrNotConnected)

	repo := repository.New(provider, daterange.OverlapInterval, mocks.NewOtel())

	_, err := repo.Available(context.Background(), may(1, 10), model.AnyRoomTypeID)

	assert.ErrorIs(t, err, postgres.ErrNotConnected)
}
