//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/api"
	reqdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/request"
	resdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/response"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/commands"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/builder"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/httptest"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/testutil"
	commandsmock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/commands"
	queriesmock "github.com/pedrovictoriano/circula-bem-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockBooking   *commandsmock.MockBookingCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockQueries   *queriesmock.MockReservationQueries
	handler       *api.ReservationHandler
	userID        uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockBooking, s.mockLifecycle, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/reservations/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.GET("/items/:id/reservations", authMiddleware, s.handler.ListByItem)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	view := builder.NewReservationBuilder().BuildView()
	reqBody := reqdto.CreateReservationRequest{ItemID: view.ItemID, Dates: view.Dates}

	s.Run("success: returns 201 Created with the pending reservation", func() {
		s.mockBooking.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.BookReservationInput) (*commands.BookReservationResult, error) {
				s.Equal(view.ItemID, in.ItemID)
				s.Equal(s.userID, in.RenterID)
				s.Equal([]calendar.Date{calendar.MustParseDate("2024-06-03"), calendar.MustParseDate("2024-06-10")}, in.Dates)
				s.Equal(uuid.Nil, in.IdempotencyKey)
				return &commands.BookReservationResult{Reservation: view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(int64(5000), body.TotalAmountCents)
		s.Equal("pending", body.Status)
	})

	s.Run("success: replayed idempotency key returns 200", func() {
		key := uuid.New()
		s.mockBooking.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.BookReservationInput) (*commands.BookReservationResult, error) {
				s.Equal(key, in.IdempotencyKey)
				return &commands.BookReservationResult{Reservation: view, IsReplayed: true}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resdto.ReservationResponse{})
	})

	s.Run("error: 400 Bad Request on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReservation{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: dates (required)", mutate: testutil.Field("dates", nil), expectCode: http.StatusBadRequest},
			{name: "empty dates", mutate: testutil.Field("dates", []string{}), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("dates", []string{"03/06/2024"}), expectCode: http.StatusBadRequest},
			{name: "impossible date", mutate: testutil.Field("dates", []string{"2024-02-30"}), expectCode: http.StatusBadRequest},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "abc"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid")
			})
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: booking failures map onto the HTTP taxonomy", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"empty selection", reservation.ErrEmptySelection, http.StatusUnprocessableEntity, "No dates selected"},
			{"invalid date", &reservation.InvalidDateError{Date: calendar.MustParseDate("2024-06-04"), Reason: reservation.RejectUnavailableWeekday}, http.StatusUnprocessableEntity, "Invalid date selection"},
			{"item missing", errs.ErrItemNotFound, http.StatusNotFound, "Item not found"},
			{"conflict", errs.Wrapf(errs.ErrDateConflict, "dates %s", "2024-06-03"), http.StatusConflict, "Dates already reserved"},
			{"key reused", errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused"},
			{"in flight", errs.ErrIdempotencyInProgress, http.StatusConflict, "currently being processed"},
			{"store failure", errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: invalid date reports the offending date", func() {
		s.mockBooking.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, &reservation.InvalidDateError{Date: calendar.MustParseDate("2024-06-03"), Reason: reservation.RejectPast})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid date selection")
		httptest.AssertErrorDetail(s.T(), rec, map[string]any{
			"date":   "2024-06-03",
			"reason": string(reservation.RejectPast),
		})
	})
}

// ================================================================================
// TestGet / TestListMine / TestListByItem
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Dates, body.Dates)
		s.Equal(view.ItemName, body.ItemName)
	})

	s.Run("error: 404 Not Found for hidden reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(nil, errs.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: passes the limit through", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.userID, 10).Return(views, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=10", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 Bad Request on out of range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ReservationHandlerTestSuite) TestListByItem() {
	itemID := uuid.New()
	url := "/items/" + itemID.String() + "/reservations"

	s.Run("success: owner gets the list", func() {
		s.mockQueries.EXPECT().ListByItem(gomock.Any(), s.userID, itemID).Return([]*queries.ReservationView{}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 403 Forbidden for non-owner", func() {
		s.mockQueries.EXPECT().ListByItem(gomock.Any(), s.userID, itemID).Return(nil, reservation.ErrNotAuthorized)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildView()
	url := "/reservations/" + view.ID.String() + "/status"

	s.Run("success: returns the moved reservation", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), commands.TransitionInput{
			ReservationID: view.ID,
			ActorID:       s.userID,
			To:            reservation.StatusConfirmed,
		}).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "confirmed"}, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 on an edge outside the table", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), gomock.Any()).
			Return(nil, &reservation.InvalidTransitionError{From: reservation.StatusCompleted, To: reservation.StatusPending})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "pending"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
		httptest.AssertErrorDetail(s.T(), rec, map[string]any{"from": "completed", "to": "pending"})
	})

	s.Run("error: 403 Forbidden for the wrong actor", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrNotAuthorized)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, errs.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
