package health

import (
	"frontdesk/internal/domains/connection/model/dto"
	"frontdesk/internal/domains/connection/service"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	conn service.Connection
}

func New(conn service.Connection) Handler {
	return Handler{conn: conn}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/healthz", h.Health)
}

type Response struct {
	Status     string            `json:"status"`
	Connection dto.StateResponse `json:"connection"`
}

// Health reports liveness. The service is alive whether or not the store is connected.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Response]
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Response{
		Status:     "ok",
		Connection: dto.NewStateResponse(h.conn.State()),
	})
}
