//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayfront/internal/handler/api"
	resdto "stayfront/internal/handler/dto/response"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/usecase/queries"
	"stayfront/tests/common/httptest"
	queriesmock "stayfront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPropertyQueries
	handler     *api.PropertyHandler
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPropertyQueries(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockQueries)

	s.router.GET("/api/properties/:id", s.handler.GetProperty)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

func (s *PropertyHandlerTestSuite) TestGetProperty() {
	url := "/api/properties/prop-42"

	s.Run("success: returns the property", func() {
		s.mockQueries.EXPECT().GetProperty(gomock.Any(), "prop-42").
			Return(&queries.PropertyView{ID: "prop-42", Name: "Villa Azul", Description: "Sea view", PricePerNight: 120}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("prop-42", body.ID)
		s.Equal("Villa Azul", body.Name)
		s.Equal("Sea view", body.Description)
		s.Equal(float64(120), body.PricePerNight)
	})

	s.Run("error: 404 when the property does not exist", func() {
		s.mockQueries.EXPECT().GetProperty(gomock.Any(), "prop-42").
			Return(nil, errs.ErrPropertyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})

	s.Run("error: 502 when the upstream is unavailable", func() {
		s.mockQueries.EXPECT().GetProperty(gomock.Any(), "prop-42").
			Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrUpstreamUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Listing service unavailable")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockQueries.EXPECT().GetProperty(gomock.Any(), "prop-42").
			Return(nil, errs.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
