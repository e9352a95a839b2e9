package connection_test

import (
	"context"
	"encoding/json"
	"errors"
	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	pgMocks "frontdesk/infras/postgres/mocks"
	connectionMocks "frontdesk/internal/domains/connection/mocks"
	"frontdesk/internal/domains/connection/model"
	"frontdesk/internal/domains/connection/model/dto"
	connectionService "frontdesk/internal/domains/connection/service"
	deskMocks "frontdesk/internal/domains/desk/mocks"
	"frontdesk/internal/handlers/connection"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error"`
}

func newRouter(handler connection.Handler) chi.Router {
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func serve[T any](t *testing.T, router chi.Router, method, path string) (int, envelope[T]) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandler_GetState(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := connectionMocks.NewMockConnection(ctrl)

	conn.EXPECT().State().Return(model.Connecting)

	handler := connection.New(&config.Config{}, deskMocks.NewMockDesk(ctrl), conn, mocks.NewOtel())

	code, body := serve[dto.StateResponse](t, newRouter(handler), http.MethodGet, "/v1/connection")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, dto.StateResponse{State: model.Connecting, Label: "Connecting..."}, body.Data)
}

func TestHandler_ConnectAndDisconnect(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		setup    func(desk *deskMocks.MockDesk, conn *connectionMocks.MockConnection)
		expected dto.ToggleResponse
	}{
		{
			name:   "connect succeeds",
			method: http.MethodPost,
			path:   "/v1/connection",
			setup: func(desk *deskMocks.MockDesk, conn *connectionMocks.MockConnection) {
				desk.EXPECT().Connect(gomock.Any()).Return(true)
				conn.EXPECT().State().Return(model.Connected)
			},
			expected: dto.ToggleResponse{
				StateResponse: dto.StateResponse{State: model.Connected, Label: "Connected", InterfaceEnabled: true},
				Success:       true,
			},
		},
		{
			name:   "connect fails",
			method: http.MethodPost,
			path:   "/v1/connection",
			setup: func(desk *deskMocks.MockDesk, conn *connectionMocks.MockConnection) {
				desk.EXPECT().Connect(gomock.Any()).Return(false)
				conn.EXPECT().State().Return(model.ConnectionFailed)
			},
			expected: dto.ToggleResponse{
				StateResponse: dto.StateResponse{State: model.ConnectionFailed, Label: "Connection failed!"},
			},
		},
		{
			name:   "disconnect while not connected",
			method: http.MethodDelete,
			path:   "/v1/connection",
			setup: func(desk *deskMocks.MockDesk, conn *connectionMocks.MockConnection) {
				desk.EXPECT().Disconnect(gomock.Any()).Return(false)
				conn.EXPECT().State().Return(model.Disconnected)
			},
			expected: dto.ToggleResponse{
				StateResponse: dto.StateResponse{State: model.Disconnected, Label: "Disconnected"},
			},
		},
		{
			name:   "toggle",
			method: http.MethodPost,
			path:   "/v1/connection/toggle",
			setup: func(desk *deskMocks.MockDesk, _ *connectionMocks.MockConnection) {
				desk.EXPECT().ToggleConnection(gomock.Any()).Return(model.Disconnected, true)
			},
			expected: dto.ToggleResponse{
				StateResponse: dto.StateResponse{State: model.Disconnected, Label: "Disconnected"},
				Success:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			desk := deskMocks.NewMockDesk(ctrl)
			conn := connectionMocks.NewMockConnection(ctrl)

			tt.setup(desk, conn)

			handler := connection.New(&config.Config{}, desk, conn, mocks.NewOtel())

			code, body := serve[dto.ToggleResponse](t, newRouter(handler), tt.method, tt.path)

			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.expected, body.Data)
		})
	}
}

func TestHandler_Stream(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := pgMocks.NewMockDialer(ctrl)
	conn := connectionService.New(dialer, mocks.NewOtel())

	handler := connection.New(&config.Config{}, deskMocks.NewMockDesk(ctrl), conn, mocks.NewOtel())

	server := httptest.NewServer(newRouter(handler))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/connection/stream"

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	read := func() model.State {
		require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

		var frame dto.StateChange
		require.NoError(t, ws.ReadJSON(&frame))
		assert.NotEmpty(t, frame.At)

		return frame.State
	}

	// the first frame is written after the stream has subscribed
	assert.Equal(t, model.Disconnected, read())

	dialer.EXPECT().Dial(gomock.Any()).Return(nil, errors.New("no route to host"))
	conn.Connect(context.Background())

	assert.Equal(t, model.Connecting, read())
	assert.Equal(t, model.ConnectionFailed, read())
}
