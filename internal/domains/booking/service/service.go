package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	// FindBookings backs the desk's booking list and never fails: an inverted range, a missing
	// connection or a failed query all yield an empty list.
	FindBookings(ctx context.Context, rng daterange.Range) []model.Booking
	GetAll(ctx context.Context, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) FindBookings(ctx context.Context, rng daterange.Range) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindBookings")
	defer scope.End()

	scope.SetAttribute("range", rng.String())

	if !rng.Ordered() {
		return []model.Booking{}
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCheckin,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.repo.GetAll(ctx, rng, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("range", rng.String()).Msg("failed to find bookings")

		return []model.Booking{}
	}

	if bookings == nil {
		return []model.Booking{}
	}

	return bookings
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	rng, err := req.Range()
	if err != nil {
		return res, failure.InvalidDateParam
	}

	if !rng.Ordered() {
		return res, failure.BadRequestFromString(timeframe.MessageFromAfterTo) // nolint:wrapcheck
	}

	total, err := s.repo.Count(ctx, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count bookings")

		return res, storeError("failed to count bookings", err)
	}

	params := req.Params()

	models, err := s.repo.GetAll(ctx, rng, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		return res, storeError("failed to get bookings", err)
	}

	res.FromModels(models, total, params)

	return res, nil
}

func storeError(msg string, err error) error {
	if errors.Is(err, postgres.ErrNotConnected) {
		return failure.StoreUnavailable
	}

	return fmt.Errorf("%s: %w", msg, err)
}
