package room

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/available", handler.GetAvailableRooms)
	router.Get("/room-types", handler.GetRoomTypes)
}

// GetAvailableRooms lists rooms with no active booking or inquiry overlapping the dates.
// @Summary Get available rooms
// @Tags Room
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Param room_type_id query int false "Room type, 0 or absent for any"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req := dto.AvailableRoomsRequest{
		From: r.URL.Query().Get(constant.RequestParamFrom),
		To:   r.URL.Query().Get(constant.RequestParamTo),
	}

	if raw := r.URL.Query().Get(constant.RequestParamRoomTypeID); raw != constant.Empty {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("room_type_id must be a number"))

			return
		}

		req.RoomTypeID = id
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rng, err := req.Range()
	if err != nil {
		response.WithError(w, failure.InvalidDateParam)

		return
	}

	if !rng.Ordered() {
		response.WithError(w, failure.BadRequestFromString(timeframe.MessageFromAfterTo))

		return
	}

	roomType := req.RoomType()
	rooms := handler.service.FindAvailableRooms(ctx, rng, roomType)

	res := dto.AvailableRoomsResponse{}
	res.FromModels(rng, roomType, rooms)

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomTypes lists room types with the synthetic "Any" first.
// @Summary Get room types
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomTypeResponse]
// @Failure 503 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	types, err := handler.service.RoomTypes(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.RoomTypesFromModels(model.WithAny(types)))
}
