package customer_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/customer/model/dto"
	serviceMocks "hotel/internal/domains/customer/service/mocks"
	"hotel/internal/handlers/customer"
)

func TestHandler_GetCustomers(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockService *serviceMocks.MockCustomer)
		wantCode  int
		wantBody  string
	}{
		{
			name: "customers with and without bookings",
			setupMock: func(mockService *serviceMocks.MockCustomer) {
				mockService.EXPECT().GetAll(gomock.Any()).Return([]dto.CustomerResponse{
					{
						Name:        "Asha Rao",
						ContactInfo: dto.ContactInfo{Email: "asha@example.com", Phone: "9876543210"},
						Booking: &dto.BookingInfo{
							RoomInfo: "Room 201 (Deluxe)",
							CheckIn:  "01/11/2026",
							CheckOut: "03/11/2026",
							Status:   dto.StatusActive,
						},
					},
					{
						Name:        "Vikram Shah",
						ContactInfo: dto.ContactInfo{Email: "vikram@example.com"},
					},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[
				{"name":"Asha Rao","contactInfo":{"email":"asha@example.com","phone":"9876543210"},
				 "booking":{"roomInfo":"Room 201 (Deluxe)","checkIn":"01/11/2026","checkOut":"03/11/2026","status":"Active"}},
				{"name":"Vikram Shah","contactInfo":{"email":"vikram@example.com","phone":""},"booking":null}
			]`,
		},
		{
			name: "no customers",
			setupMock: func(mockService *serviceMocks.MockCustomer) {
				mockService.EXPECT().GetAll(gomock.Any()).Return([]dto.CustomerResponse{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name: "service error",
			setupMock: func(mockService *serviceMocks.MockCustomer) {
				mockService.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch customers"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := serviceMocks.NewMockCustomer(ctrl)
			tt.setupMock(mockService)

			handler := customer.New(mockService, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
