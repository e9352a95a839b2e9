package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/connection/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/observer"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Connection owns the single store connection and publishes every state transition.
type Connection interface {
	postgres.Provider

	Connect(ctx context.Context) bool
	Disconnect(ctx context.Context) bool
	IsConnected() bool
	State() model.State
	Subscribe(fn observer.Func[model.State]) observer.Handle
	Unsubscribe(handle observer.Handle) bool
}

type serviceImpl struct {
	dialer postgres.Dialer
	otel   otel.Otel

	// op serialises Connect and Disconnect.
	op sync.Mutex

	mu    sync.RWMutex
	state model.State
	db    *sqlx.DB

	observers observer.Registry[model.State]
}

func New(dialer postgres.Dialer, otel otel.Otel) Connection {
	return &serviceImpl{
		dialer: dialer,
		otel:   otel,
		state:  model.Disconnected,
	}
}

func (s *serviceImpl) Connect(ctx context.Context) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Connection.Connect")
	defer scope.End()

	s.op.Lock()
	defer s.op.Unlock()

	if s.State() == model.Connected {
		return true
	}

	s.setState(ctx, model.Connecting, nil)

	db, err := s.dialer.Dial(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open store connection")

		s.setState(ctx, model.ConnectionFailed, nil)

		return false
	}

	s.setState(ctx, model.Connected, db)

	return true
}

func (s *serviceImpl) Disconnect(ctx context.Context) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Connection.Disconnect")
	defer scope.End()

	s.op.Lock()
	defer s.op.Unlock()

	s.mu.RLock()
	state, db := s.state, s.db
	s.mu.RUnlock()

	if state != model.Connected {
		return false
	}

	if err := db.Close(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to close store connection")

		return false
	}

	s.setState(ctx, model.Disconnected, nil)

	return true
}

func (s *serviceImpl) IsConnected() bool {
	return s.State() == model.Connected
}

func (s *serviceImpl) State() model.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *serviceImpl) DB() (*sqlx.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != model.Connected || s.db == nil {
		return nil, fmt.Errorf("connection is %s: %w", s.state, postgres.ErrNotConnected)
	}

	return s.db, nil
}

func (s *serviceImpl) Subscribe(fn observer.Func[model.State]) observer.Handle {
	return s.observers.Subscribe(fn)
}

func (s *serviceImpl) Unsubscribe(handle observer.Handle) bool {
	return s.observers.Unsubscribe(handle)
}

// setState stores the new state together with its connection, then notifies without holding the lock.
func (s *serviceImpl) setState(ctx context.Context, state model.State, db *sqlx.DB) {
	s.mu.Lock()
	previous := s.state
	s.state = state
	s.db = db
	s.mu.Unlock()

	log.Info().
		Str("from", previous.String()).
		Str("to", state.String()).
		Msg("store connection state changed")

	s.observers.Notify(ctx, state)
}
