package booking_test

import (
	"encoding/json"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model/dto"
	bookingMocks "frontdesk/internal/domains/booking/service/mocks"
	"frontdesk/internal/handlers/booking"
	"frontdesk/shared/failure"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data  dto.GetBookingsResponse `json:"data"`
	Error string                  `json:"error"`
}

func serve(t *testing.T, service *bookingMocks.MockBooking, path string) (int, envelope) {
	t.Helper()

	handler := booking.New(service, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var res envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return rec.Code, res
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("query is passed through", func(t *testing.T) {
		service := bookingMocks.NewMockBooking(gomock.NewController(t))

		expected := dto.GetBookingsResponse{
			Bookings: []dto.BookingResponse{{ID: 1, Checkin: "2024-06-02", Checkout: "2024-06-05", Surname: "Doe"}},
		}

		service.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error) {
				assert.Equal(t, "2024-06-01", req.From)
				assert.Equal(t, "2024-06-30", req.To)
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 10, req.Limit)
				assert.Equal(t, "surname", req.SortBy)
				assert.Equal(t, "DESC", req.SortDir)

				return expected, nil
			})

		code, res := serve(t, service, "/v1/bookings?from=2024-06-01&to=2024-06-30&page=2&sort_by=surname&sort_dir=desc")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, expected.Bookings, res.Data.Bookings)
	})

	t.Run("malformed date", func(t *testing.T) {
		service := bookingMocks.NewMockBooking(gomock.NewController(t))

		code, res := serve(t, service, "/v1/bookings?from=2024-13-01")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "from must be a date formatted as YYYY-MM-DD", res.Error)
	})

	t.Run("store not connected", func(t *testing.T) {
		service := bookingMocks.NewMockBooking(gomock.NewController(t))
		service.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetBookingsResponse{}, failure.StoreUnavailable)

		code, res := serve(t, service, "/v1/bookings")

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "store is not connected", res.Error)
	})
}
