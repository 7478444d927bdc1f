//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayfront/internal/handler/api"
	resdto "stayfront/internal/handler/dto/response"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/upstream"
	"stayfront/internal/usecase/commands"
	"stayfront/tests/common/builder"
	"stayfront/tests/common/httptest"
	"stayfront/tests/common/testutil"
	commandsmock "stayfront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/api/bookings", s.handler.CreateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/bookings"

	s.Run("success: 201 with Location header and derived total", func() {
		ref := uuid.New()
		submittedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.SubmitBookingParams) (*commands.SubmitResult, error) {
				s.Equal("prop-42", params.PropertyID)
				s.Equal(float64(100), params.NightlyRate)
				s.Equal("Ada", params.Form.FirstName)
				return &commands.SubmitResult{
					Reference:   ref,
					TotalPrice:  700,
					Currency:    "USD",
					SubmittedAt: submittedAt,
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(ref.String(), body.Reference)
		s.Equal(float64(700), body.TotalPrice)
		s.Equal("USD", body.Currency)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/bookings/" + ref.String(),
		})
	})

	s.Run("error: 422 relays the upstream rejection message verbatim", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		rejected := &upstream.RejectedError{Message: "Card declined"}
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(rejected, errs.ErrBookingRejected))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Card declined")
	})

	s.Run("error: 422 with generic message when the rejection carries no detail", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("status 500"), errs.ErrBookingRejected))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Failed to submit booking. Please try again.")
	})

	s.Run("error: 400 when the form is incomplete", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing email"), errs.ErrFormIncomplete))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking request")
	})

	s.Run("error: 502 when the booking service is unreachable", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrUpstreamUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Booking service unavailable")
	})

	s.Run("validation: 400 on malformed payloads before the command runs", func() {
		base := builder.NewBookingBuilder().BuildCreateRequestDTO()
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: firstName (required)", mutate: testutil.Field("firstName", nil)},
			{name: "empty email", mutate: testutil.Field("email", "")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "guests boundary invalid (0)", mutate: testutil.Field("guests", 0)},
			{name: "guests boundary invalid (7)", mutate: testutil.Field("guests", 7)},
			{name: "missing field: propertyId (required)", mutate: testutil.Field("propertyId", nil)},
			{name: "non-positive price", mutate: testutil.Field("pricePerNight", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				payload := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}
