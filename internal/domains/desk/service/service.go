package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	bookingService "frontdesk/internal/domains/booking/service"
	connectionModel "frontdesk/internal/domains/connection/model"
	connectionDto "frontdesk/internal/domains/connection/model/dto"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/internal/domains/desk/model/dto"
	inquiryModel "frontdesk/internal/domains/inquiry/model"
	inquiryDto "frontdesk/internal/domains/inquiry/model/dto"
	inquiryService "frontdesk/internal/domains/inquiry/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var errDeskDisabled = failure.Conflict("desk is not connected")

// Desk owns both date pairs, the selected room type and the displayed result sets. It reacts to
// connection and timeframe notifications the way an operator's screen would.
type Desk interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
	Connect(ctx context.Context) bool
	Disconnect(ctx context.Context) bool
	ToggleConnection(ctx context.Context) (connectionModel.State, bool)
	OnDateFieldChanged(ctx context.Context, id timeframe.ID, field timeframe.Field, date *time.Time) error
	OnRoomTypeChanged(ctx context.Context, roomTypeID int64) error
	MatchInquiry(ctx context.Context, id int64) error
	Snapshot(ctx context.Context) dto.Snapshot
}

type serviceImpl struct {
	cfg        *config.Config
	conn       connectionService.Connection
	rooms      roomService.Room
	bookings   bookingService.Booking
	inquiries  inquiryService.Inquiry
	timeframes *timeframe.Set
	otel       otel.Otel

	// mu serialises every entry point. Notification handlers run on the goroutine of the entry
	// point that caused them and rely on mu being held.
	mu       sync.Mutex
	handles  []func()
	started  bool
	selected roomModel.RoomType
	types    []roomModel.RoomType
	matched  string

	bookingList   []bookingModel.Booking
	availableList []roomModel.Room
	inquiryList   []inquiryModel.Inquiry
}

func New(
	cfg *config.Config,
	conn connectionService.Connection,
	rooms roomService.Room,
	bookings bookingService.Booking,
	inquiries inquiryService.Inquiry,
	timeframes *timeframe.Set,
	otel otel.Otel,
) Desk {
	return &serviceImpl{
		cfg:        cfg,
		conn:       conn,
		rooms:      rooms,
		bookings:   bookings,
		inquiries:  inquiries,
		timeframes: timeframes,
		otel:       otel,
		selected:   roomModel.AnyRoomType(),
		types:      roomModel.WithAny(nil),

		bookingList:   []bookingModel.Booking{},
		availableList: []roomModel.Room{},
		inquiryList:   []inquiryModel.Inquiry{},
	}
}

func (s *serviceImpl) Start(ctx context.Context) {
	s.mu.Lock()

	if s.started {
		s.mu.Unlock()

		return
	}

	s.started = true

	handle := s.conn.Subscribe(s.onConnectionChanged)
	s.handles = append(s.handles, func() { s.conn.Unsubscribe(handle) })

	for _, v := range s.timeframes.All() {
		handle := v.Subscribe(s.onTimeframeChanged)
		s.handles = append(s.handles, func() { v.Unsubscribe(handle) })
	}

	s.mu.Unlock()

	log.Info().Bool("autoConnect", s.cfg.App.AutoConnect).Msg("desk started")

	if s.cfg.App.AutoConnect {
		s.Connect(ctx)
	}
}

// Stop disconnects and detaches from every notification source.
func (s *serviceImpl) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn.IsConnected() {
		s.conn.Disconnect(ctx)
	}

	for _, unsubscribe := range s.handles {
		unsubscribe()
	}

	s.handles = nil
	s.started = false

	log.Info().Msg("desk stopped")
}

func (s *serviceImpl) Connect(ctx context.Context) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.Connect")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.Connect(ctx)
}

func (s *serviceImpl) Disconnect(ctx context.Context) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.Disconnect")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.Disconnect(ctx)
}

// ToggleConnection is the Connect/Disconnect button: it disconnects when connected and connects
// otherwise. It returns the resulting state and whether the action succeeded.
func (s *serviceImpl) ToggleConnection(ctx context.Context) (connectionModel.State, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.ToggleConnection")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.conn.IsConnected() {
		ok = s.conn.Disconnect(ctx)
	} else {
		ok = s.conn.Connect(ctx)
	}

	return s.conn.State(), ok
}

func (s *serviceImpl) OnDateFieldChanged(ctx context.Context, id timeframe.ID, field timeframe.Field, date *time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.OnDateFieldChanged")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"timeframe": string(id),
		"field":     string(field),
	})

	validator, ok := s.timeframes.Get(id)
	if !ok {
		return failure.NotFound(fmt.Sprintf("unknown timeframe %q", id)) // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.conn.IsConnected() {
		return errDeskDisabled
	}

	err = validator.Set(ctx, field, date)

	var validationErr *timeframe.ValidationError
	if errors.As(err, &validationErr) {
		return failure.BadRequestFromString(validationErr.Message) // nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) OnRoomTypeChanged(ctx context.Context, roomTypeID int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.OnRoomTypeChanged")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.conn.IsConnected() {
		return errDeskDisabled
	}

	idx := slices.IndexFunc(s.types, func(t roomModel.RoomType) bool { return t.ID == roomTypeID })
	if idx < 0 {
		return failure.BadRequestFromString(fmt.Sprintf("unknown room type %d", roomTypeID)) // nolint:wrapcheck
	}

	s.selected = s.types[idx]
	s.refreshAvailability(ctx, s.timeframes.Availability.Range())

	return nil
}

// MatchInquiry copies an inquiry's stay into the availability pair so the operator sees which
// rooms could take the group.
func (s *serviceImpl) MatchInquiry(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.MatchInquiry")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.conn.IsConnected() {
		return errDeskDisabled
	}

	inquiry, err := s.inquiries.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	rng := daterange.Between(timezone.Day(inquiry.From), timezone.Day(inquiry.To))
	if err = s.timeframes.Availability.Replace(ctx, rng); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	s.matched = inquiry.GroupName

	log.Info().Int64("inquiry", inquiry.ID).Str("group", inquiry.GroupName).Str("range", rng.String()).Msg("inquiry matched")

	return nil
}

func (s *serviceImpl) Snapshot(ctx context.Context) dto.Snapshot {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.Snapshot")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	timeframes := make(map[timeframe.ID]dto.TimeframeResponse, 2)
	for _, v := range s.timeframes.All() {
		timeframes[v.ID()] = dto.NewTimeframeResponse(v.Range())
	}

	available := make([]roomDto.RoomResponse, len(s.availableList))
	for i, room := range s.availableList {
		available[i].FromModel(room)
	}

	return dto.Snapshot{
		Connection:       connectionDto.NewStateResponse(s.conn.State()),
		Timeframes:       timeframes,
		RoomTypes:        roomDto.RoomTypesFromModels(s.types),
		SelectedRoomType: s.selected.ID,
		MatchedGroup:     s.matched,
		Bookings:         bookingDto.FromModels(s.bookingList),
		AvailableRooms:   available,
		Inquiries:        inquiryDto.FromModels(s.inquiryList),
	}
}

func (s *serviceImpl) onConnectionChanged(ctx context.Context, state connectionModel.State) {
	switch state {
	case connectionModel.Connected:
		s.rooms.Invalidate(ctx)
		s.loadAll(ctx)
	case connectionModel.Disconnected:
		s.rooms.Invalidate(ctx)
		s.clearAll()
	case connectionModel.Connecting, connectionModel.ConnectionFailed:
	}
}

func (s *serviceImpl) onTimeframeChanged(ctx context.Context, event timeframe.Event) {
	if !s.conn.IsConnected() {
		return
	}

	switch event.ID {
	case timeframe.Bookings:
		s.bookingList = s.bookings.FindBookings(ctx, event.Range)
	case timeframe.Availability:
		s.refreshAvailability(ctx, event.Range)
	}
}

func (s *serviceImpl) loadAll(ctx context.Context) {
	s.bookingList = s.bookings.FindBookings(ctx, s.timeframes.Bookings.Range())
	s.inquiryList = s.inquiries.FindInquiries(ctx)

	types, err := s.rooms.RoomTypes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room types, only Any is offered")
	}

	s.types = roomModel.WithAny(types)
	s.selected = roomModel.AnyRoomType()

	s.refreshAvailability(ctx, s.timeframes.Availability.Range())

	log.Info().
		Int("bookings", len(s.bookingList)).
		Int("inquiries", len(s.inquiryList)).
		Int("roomTypes", len(types)).
		Msg("desk loaded")
}

func (s *serviceImpl) clearAll() {
	s.bookingList = []bookingModel.Booking{}
	s.availableList = []roomModel.Room{}
	s.inquiryList = []inquiryModel.Inquiry{}
	s.types = roomModel.WithAny(nil)
	s.selected = roomModel.AnyRoomType()
	s.matched = constant.Empty
}

func (s *serviceImpl) refreshAvailability(ctx context.Context, rng daterange.Range) {
	s.availableList = s.rooms.FindAvailableRooms(ctx, rng, s.selected)
}
