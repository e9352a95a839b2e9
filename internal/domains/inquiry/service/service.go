package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/inquiry/model"
	"frontdesk/internal/domains/inquiry/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = failure.NotFound("inquiry not found")

type Inquiry interface {
	// FindInquiries backs the desk's inquiry list and never fails.
	FindInquiries(ctx context.Context) []model.Inquiry
	GetAll(ctx context.Context) ([]model.Inquiry, error)
	Get(ctx context.Context, id int64) (model.Inquiry, error)
}

type serviceImpl struct {
	repo repository.Inquiry
	otel otel.Otel
}

func New(repo repository.Inquiry, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

var ordering = gDto.QueryParams{
	SortBy:  model.TableName + "." + model.FieldDateFrom,
	SortDir: gDto.SortDirAsc,
}

func (s *serviceImpl) FindInquiries(ctx context.Context) []model.Inquiry {
	inquiries, err := s.GetAll(ctx)
	if err != nil {
		return []model.Inquiry{}
	}

	return inquiries
}

func (s *serviceImpl) GetAll(ctx context.Context) ([]model.Inquiry, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.GetAll")
	defer scope.End()

	inquiries, err := s.repo.GetAll(ctx, ordering, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		if errors.Is(err, postgres.ErrNotConnected) {
			return nil, failure.StoreUnavailable
		}

		return nil, fmt.Errorf("failed to get inquiries: %w", err)
	}

	if inquiries == nil {
		inquiries = []model.Inquiry{}
	}

	return inquiries, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Inquiry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Get")
	defer scope.End()

	scope.SetAttribute("inquiry.id", fmt.Sprint(id))

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get inquiry")

		if errors.Is(err, postgres.ErrNotConnected) {
			return res, failure.StoreUnavailable
		}

		return res, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if res.ID == 0 {
		return res, ErrNotFound
	}

	return res, nil
}
