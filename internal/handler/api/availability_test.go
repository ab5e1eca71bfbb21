//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/api"
	resdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/response"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/httptest"
	queriesmock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	h := api.NewAvailabilityHandler(s.mockQueries)
	s.router.GET("/items/:id/availability", h.Month)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestMonth() {
	itemID := uuid.New()
	base := "/items/" + itemID.String() + "/availability"

	s.Run("success: returns the classified month", func() {
		september, err := calendar.NewMonth(2024, time.September)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().MonthAvailability(gomock.Any(), itemID, september).Return(&queries.AvailabilityView{
			ItemID:           itemID,
			Year:             2024,
			Month:            9,
			PricePerDayCents: 2500,
			Days: []queries.DayView{
				{Date: "2024-09-01", Classification: "disabled_past"},
				{Date: "2024-09-02", Classification: "selectable"},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?year=2024&month=9", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2500), body.PricePerDayCents)
		s.Equal([]resdto.DayResponse{
			{Date: "2024-09-01", Classification: "disabled_past"},
			{Date: "2024-09-02", Classification: "selectable"},
		}, body.Days)
	})

	s.Run("error: 400 Bad Request on bad query", func() {
		for _, q := range []string{"", "?year=2024", "?year=2024&month=13", "?year=2024&month=0", "?year=abc&month=1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 400 Bad Request on malformed item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/nope/availability?year=2024&month=9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID format")
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockQueries.EXPECT().MonthAvailability(gomock.Any(), itemID, gomock.Any()).Return(nil, errs.ErrItemNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?year=2024&month=9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}
