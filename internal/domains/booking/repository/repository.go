package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Booking interface {
	// GetAll lists bookings with checkin on or after rng.From and checkout on or before rng.To.
	// A missing side is not constrained.
	GetAll(ctx context.Context, rng daterange.Range, params gDto.QueryParams) ([]model.Booking, error)
	Count(ctx context.Context, rng daterange.Range) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db postgres.Provider, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, rng daterange.Range, params gDto.QueryParams) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAll")
	defer scope.End()

	return r.Repository.GetAll(ctx, params, FilterByRange(rng)) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, rng daterange.Range) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Count")
	defer scope.End()

	return r.Repository.Count(ctx, FilterByRange(rng)) //nolint:wrapcheck
}

// FilterByRange keeps bookings inside rng. A missing side is not constrained.
func FilterByRange(rng daterange.Range) gDto.FilterGroup {
	filter := gDto.And()

	if rng.From != nil {
		filter.Add(gDto.GreaterEq(model.TableName, model.FieldCheckin, constant.RequestParamFrom, rng.FromString()))
	}

	if rng.To != nil {
		filter.Add(gDto.LessEq(model.TableName, model.FieldCheckout, constant.RequestParamTo, rng.ToString()))
	}

	return filter
}
