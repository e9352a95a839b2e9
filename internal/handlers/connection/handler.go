package connection

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/connection/model"
	"frontdesk/internal/domains/connection/model/dto"
	connectionService "frontdesk/internal/domains/connection/service"
	deskService "frontdesk/internal/domains/desk/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	streamBufferSize = 16
	streamPingPeriod = 30 * time.Second
	streamPongWait   = 60 * time.Second
	streamWriteWait  = 10 * time.Second
)

type Handler struct {
	desk     deskService.Desk
	conn     connectionService.Connection
	otel     otel.Otel
	upgrader *websocket.Upgrader
}

func New(cfg *config.Config, desk deskService.Desk, conn connectionService.Connection, otel otel.Otel) Handler {
	return Handler{
		desk: desk,
		conn: conn,
		otel: otel,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == constant.Empty || cfg.Server.Env == constant.ServerEnvDevelopment {
					return true
				}

				return slices.Contains(cfg.App.CORS.AllowedOrigins, constant.Asterix) ||
					slices.Contains(cfg.App.CORS.AllowedOrigins, origin)
			},
		},
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/connection", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetState)
		routerGroup.Post("/", handler.Connect)
		routerGroup.Delete("/", handler.Disconnect)
		routerGroup.Post("/toggle", handler.Toggle)
		routerGroup.Get("/stream", handler.Stream)
	})
}

// GetState returns the current connection state.
// @Summary Get connection state
// @Tags Connection
// @Produce json
// @Success 200 {object} response.Data[dto.StateResponse]
// @Router /v1/connection [get]
func (handler *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConnectionState")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, dto.NewStateResponse(handler.conn.State()))
}

// Connect opens the store connection. A failed attempt still answers 200 with success=false and
// the CONNECTION_FAILED state.
// @Summary Connect to the store
// @Tags Connection
// @Produce json
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Router /v1/connection [post]
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Connect")
	defer scope.End()

	ok := handler.desk.Connect(ctx)

	scope.SetAttribute("success", ok)

	handler.respondToggle(w, handler.conn.State(), ok)
}

// Disconnect closes the store connection. Disconnecting while not connected answers success=false.
// @Summary Disconnect from the store
// @Tags Connection
// @Produce json
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Router /v1/connection [delete]
func (handler *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Disconnect")
	defer scope.End()

	ok := handler.desk.Disconnect(ctx)

	scope.SetAttribute("success", ok)

	handler.respondToggle(w, handler.conn.State(), ok)
}

// Toggle is the Connect/Disconnect button.
// @Summary Toggle the store connection
// @Tags Connection
// @Produce json
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Router /v1/connection/toggle [post]
func (handler *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleConnection")
	defer scope.End()

	state, ok := handler.desk.ToggleConnection(ctx)

	scope.SetAttributes(map[string]any{
		"state":   state.String(),
		"success": ok,
	})

	handler.respondToggle(w, state, ok)
}

func (handler *Handler) respondToggle(w http.ResponseWriter, state model.State, ok bool) {
	response.WithJSON(w, http.StatusOK, dto.ToggleResponse{
		StateResponse: dto.NewStateResponse(state),
		Success:       ok,
	})
}

// Stream upgrades to a WebSocket and sends the current state followed by one frame per
// transition until the client goes away.
// @Summary Stream connection state transitions
// @Tags Connection
// @Router /v1/connection/stream [get]
func (handler *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	ws, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade connection stream")

		return
	}
	defer ws.Close()

	frames := make(chan model.State, streamBufferSize)

	handle := handler.conn.Subscribe(func(_ context.Context, state model.State) {
		select {
		case frames <- state:
		default:
			log.Warn().Str("state", state.String()).Msg("connection stream is not keeping up, dropping frame")
		}
	})
	defer handler.conn.Unsubscribe(handle)

	closed := make(chan struct{})

	_ = ws.SetReadDeadline(time.Now().Add(streamPongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	go func() {
		defer close(closed)

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	if !writeFrame(ws, handler.conn.State()) {
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case state := <-frames:
			if !writeFrame(ws, state) {
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(streamWriteWait))

			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Msg("connection stream ping failed")

				return
			}
		}
	}
}

func writeFrame(ws *websocket.Conn, state model.State) bool {
	_ = ws.SetWriteDeadline(time.Now().Add(streamWriteWait))

	if err := ws.WriteJSON(dto.NewStateChange(state)); err != nil {
		log.Debug().Err(err).Msg("failed to write connection stream frame")

		return false
	}

	return true
}
