package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeyRoomTypes = "room_type:all"

type Room interface {
	// FindAvailableRooms never fails: an unusable range, a missing connection or a failed
	// query all yield an empty result.
	FindAvailableRooms(ctx context.Context, rng daterange.Range, roomType model.RoomType) []model.Room
	RoomTypes(ctx context.Context) ([]model.RoomType, error)
	// Invalidate drops the cached room types so the next RoomTypes reads the store.
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Room
	conn  connectionService.Connection
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, conn connectionService.Connection, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		conn:  conn,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) FindAvailableRooms(ctx context.Context, rng daterange.Range, roomType model.RoomType) []model.Room {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailableRooms")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"range":        rng.String(),
		"room_type_id": roomType.ID,
	})

	if !rng.Bounded() || !rng.Ordered() {
		log.Debug().Str("range", rng.String()).Msg("skipping availability lookup for incomplete range")

		return []model.Room{}
	}

	rooms, err := s.repo.Available(ctx, rng, roomType.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("range", rng.String()).Int64("roomTypeID", roomType.ID).Msg("failed to find available rooms")

		return []model.Room{}
	}

	if rooms == nil {
		return []model.Room{}
	}

	return rooms
}

// RoomTypes lists every room type by id, served from the cache while it holds them. Nothing is
// served while the store is disconnected, cached or not.
func (s *serviceImpl) RoomTypes(ctx context.Context) ([]model.RoomType, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomTypes")
	defer scope.End()

	if !s.conn.IsConnected() {
		scope.TraceError(postgres.ErrNotConnected)

		return nil, failure.StoreUnavailable
	}

	types, err := cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheKeyRoomTypes), s.cfg.Cache.TTL, s.loadRoomTypes)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		if errors.Is(err, postgres.ErrNotConnected) {
			return nil, failure.StoreUnavailable
		}

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	return types, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheKeyRoomTypes))
}

func (s *serviceImpl) loadRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	types, err := s.repo.RoomTypes(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if types == nil {
		return []model.RoomType{}, nil
	}

	return types, nil
}
