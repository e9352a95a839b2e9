package service_test

import (
	"context"
	"errors"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	pgMocks "frontdesk/infras/postgres/mocks"
	"frontdesk/internal/domains/connection/model"
	"frontdesk/internal/domains/connection/service"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorded struct {
	state     model.State
	connected bool
}

func record(conn service.Connection) *[]recorded {
	events := &[]recorded{}
	conn.Subscribe(func(_ context.Context, state model.State) {
		*events = append(*events, recorded{state: state, connected: conn.IsConnected()})
	})

	return events
}

func newStore(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestConnection_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := pgMocks.NewMockDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any()).Return(nil, errors.New("connection refused"))

	conn := service.New(dialer, mocks.NewOtel())
	events := record(conn)

	ok := conn.Connect(context.Background())

	assert.False(t, ok)
	assert.Equal(t, []recorded{
		{state: model.Connecting, connected: false},
		{state: model.ConnectionFailed, connected: false},
	}, *events)
	assert.Equal(t, model.ConnectionFailed, conn.State())
	assert.False(t, conn.IsConnected())

	_, err := conn.DB()
	assert.ErrorIs(t, err, postgres.ErrNotConnected)
}

func TestConnection_ConnectSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _ := newStore(t)

	dialer := pgMocks.NewMockDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any()).Return(db, nil).Times(1)

	conn := service.New(dialer, mocks.NewOtel())

	var dbOnConnected *sqlx.DB
	conn.Subscribe(func(_ context.Context, state model.State) {
		if state == model.Connected {
			dbOnConnected, _ = conn.DB()
		}
	})
	events := record(conn)

	assert.True(t, conn.Connect(context.Background()))
	assert.Equal(t, []recorded{
		{state: model.Connecting, connected: false},
		{state: model.Connected, connected: true},
	}, *events)
	assert.Same(t, db, dbOnConnected)

	// already connected: no dial, no transition
	assert.True(t, conn.Connect(context.Background()))
	assert.Len(t, *events, 2)
}

func TestConnection_RetryAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _ := newStore(t)

	dialer := pgMocks.NewMockDialer(ctrl)
	gomock.InOrder(
		dialer.EXPECT().Dial(gomock.Any()).Return(nil, errors.New("timeout")),
		dialer.EXPECT().Dial(gomock.Any()).Return(db, nil),
	)

	conn := service.New(dialer, mocks.NewOtel())
	events := record(conn)

	assert.False(t, conn.Connect(context.Background()))
	assert.True(t, conn.Connect(context.Background()))

	states := make([]model.State, 0, len(*events))
	for _, e := range *events {
		states = append(states, e.state)
	}

	assert.Equal(t, []model.State{model.Connecting, model.ConnectionFailed, model.Connecting, model.Connected}, states)
}

func TestConnection_Disconnect(t *testing.T) {
	tests := []struct {
		name      string
		connect   bool
		closeErr  error
		want      bool
		wantState model.State
		wantEvent []model.State
	}{
		{
			name:      "not connected",
			connect:   false,
			want:      false,
			wantState: model.Disconnected,
			wantEvent: []model.State{},
		},
		{
			name:      "connected",
			connect:   true,
			want:      true,
			wantState: model.Disconnected,
			wantEvent: []model.State{model.Disconnected},
		},
		{
			name:      "close fails",
			connect:   true,
			closeErr:  errors.New("broken pipe"),
			want:      false,
			wantState: model.Connected,
			wantEvent: []model.State{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db, mock := newStore(t)
			dialer := pgMocks.NewMockDialer(ctrl)
			conn := service.New(dialer, mocks.NewOtel())

			if tt.connect {
				dialer.EXPECT().Dial(gomock.Any()).Return(db, nil)
				require.True(t, conn.Connect(context.Background()))

				if tt.closeErr != nil {
					mock.ExpectClose().WillReturnError(tt.closeErr)
				} else {
					mock.ExpectClose()
				}
			}

			states := []model.State{}
			conn.Subscribe(func(_ context.Context, state model.State) {
				states = append(states, state)
			})

			assert.Equal(t, tt.want, conn.Disconnect(context.Background()))
			assert.Equal(t, tt.wantState, conn.State())
			assert.Equal(t, tt.wantEvent, states)

			if tt.connect {
				assert.NoError(t, mock.ExpectationsWereMet())
			}
		})
	}
}

func TestConnection_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := pgMocks.NewMockDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any()).Return(nil, errors.New("refused"))

	conn := service.New(dialer, mocks.NewOtel())

	calls := 0
	handle := conn.Subscribe(func(context.Context, model.State) { calls++ })

	assert.True(t, conn.Unsubscribe(handle))
	assert.False(t, conn.Unsubscribe(handle))

	conn.Connect(context.Background())
	assert.Zero(t, calls)
}
