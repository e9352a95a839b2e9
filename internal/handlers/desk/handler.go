package desk

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/desk/model/dto"
	"frontdesk/internal/domains/desk/service"
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
	service service.Desk
	otel    otel.Otel
}

func New(service service.Desk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/desk", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSnapshot)
		routerGroup.Put("/timeframes/{timeframeID}/{field}", handler.ChangeDateField)
		routerGroup.Put("/room-type", handler.ChangeRoomType)
		routerGroup.Post("/inquiries/{id}/match", handler.MatchInquiry)
	})
}

// GetSnapshot returns everything the desk currently shows.
// @Summary Get the desk
// @Tags Desk
// @Produce json
// @Success 200 {object} response.Data[dto.Snapshot]
// @Router /v1/desk [get]
func (handler *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshot")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Snapshot(ctx))
}

// ChangeDateField edits one side of a date pair. A rejected edit answers 400 and the pair keeps
// its reverted value.
// @Summary Change a date field
// @Tags Desk
// @Accept json
// @Produce json
// @Param timeframeID path string true "bookings or availability"
// @Param field path string true "from or to"
// @Param request body dto.DateFieldRequest true "New date, empty clears the field"
// @Success 200 {object} response.Data[dto.Snapshot]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/desk/timeframes/{timeframeID}/{field} [put]
func (handler *Handler) ChangeDateField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeDateField")
	defer scope.End()

	id, ok := timeframe.ParseID(chi.URLParam(r, constant.RequestParamTimeframeID))
	if !ok {
		response.WithError(w, failure.NotFound("timeframe not found"))

		return
	}

	field, ok := timeframe.ParseField(chi.URLParam(r, constant.RequestParamField))
	if !ok {
		response.WithError(w, failure.NotFound("date field not found"))

		return
	}

	req := dto.DateFieldRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	day, err := req.Day()
	if err != nil {
		response.WithError(w, failure.InvalidDateParam)

		return
	}

	if err := handler.service.OnDateFieldChanged(ctx, id, field, day); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("timeframe", string(id)).Str("field", string(field)).Msg("date field change refused")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.Snapshot(ctx))
}

// ChangeRoomType selects the room type availability is filtered by; 0 is Any.
// @Summary Change the room type
// @Tags Desk
// @Accept json
// @Produce json
// @Param request body dto.RoomTypeRequest true "Room type"
// @Success 200 {object} response.Data[dto.Snapshot]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/desk/room-type [put]
func (handler *Handler) ChangeRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeRoomType")
	defer scope.End()

	req := dto.RoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.OnRoomTypeChanged(ctx, *req.RoomTypeID); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("roomTypeID", *req.RoomTypeID).Msg("room type change refused")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.Snapshot(ctx))
}

// MatchInquiry copies an inquiry's stay into the availability dates.
// @Summary Match an inquiry
// @Tags Desk
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} response.Data[dto.Snapshot]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/desk/inquiries/{id}/match [post]
func (handler *Handler) MatchInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MatchInquiry")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("inquiry id must be a number"))

		return
	}

	if err := handler.service.MatchInquiry(ctx, id); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("inquiry", id).Msg("inquiry match refused")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.Snapshot(ctx))
}
