package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

const (
	argFrom = "from"
	argTo   = "to"
)

type Room interface {
	// Available lists rooms free of live bookings and inquiries over rng, ordered by id.
	// rng must be bounded. roomTypeID 0 does not filter by type.
	Available(ctx context.Context, rng daterange.Range, roomTypeID int64) ([]model.Room, error)
	RoomTypes(ctx context.Context) ([]model.RoomType, error)
}

type repositoryImpl struct {
	rooms     gRepo.Repository[model.Room]
	roomTypes gRepo.Repository[model.RoomType]
	overlap   daterange.Overlap
	otel      otel.Otel
}

func New(db postgres.Provider, overlap daterange.Overlap, otel otel.Otel) Room {
	return &repositoryImpl{
		rooms:     gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		roomTypes: gRepo.NewRepository[model.RoomType](model.EntityRoomType, model.TableNameRoomType, model.FieldID, db, otel),
		overlap:   overlap,
		otel:      otel,
	}
}

func (r *repositoryImpl) Available(ctx context.Context, rng daterange.Range, roomTypeID int64) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Available")
	defer scope.End()

	if !rng.Bounded() {
		return nil, fmt.Errorf("available rooms need a bounded range, got %s", rng)
	}

	args := map[string]any{
		argFrom: rng.FromString(),
		argTo:   rng.ToString(),
	}

	filter := gDto.And(
		gDto.Plain(fmt.Sprintf(
			"room.id NOT IN (SELECT booking_room.room_id FROM booking_room "+
				"JOIN booking ON booking.id = booking_room.booking_id "+
				"WHERE booking.cancelled_at IS NULL AND %s)",
			r.overlap.Predicate("booking.checkin", "booking.checkout", argFrom, argTo),
		), args),
		gDto.Plain(fmt.Sprintf(
			"room.id NOT IN (SELECT inquiry_room.room_id FROM inquiry_room "+
				"JOIN inquiry ON inquiry.id = inquiry_room.inquiry_id "+
				"WHERE inquiry.cancelled_at IS NULL AND %s)",
			r.overlap.Predicate("inquiry.date_from", "inquiry.date_to", argFrom, argTo),
		), args),
	)

	if roomTypeID != model.AnyRoomTypeID {
		filter.Add(gDto.Eq(model.TableName, model.FieldRoomTypeID, roomTypeID))
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	return r.rooms.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) RoomTypes(ctx context.Context) ([]model.RoomType, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RoomTypes")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.TableNameRoomType + "." + model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	return r.roomTypes.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}
