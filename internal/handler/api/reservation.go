package api

import (
	"net/http"

	reqdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/request"
	resdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/response"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/httperr"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/middleware"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/commands"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type ReservationHandler struct {
	booking   commands.BookingCommands
	lifecycle commands.LifecycleCommands
	q         queries.ReservationQueries
}

func NewReservationHandler(
	booking commands.BookingCommands,
	lifecycle commands.LifecycleCommands,
	q queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{booking: booking, lifecycle: lifecycle, q: q}
}

// @Summary Create reservation
// @Description Reserve one or more dates of an item. A repeated Idempotency-Key replays the first result.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrRenterNotAuthenticated)
		return
	}

	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	dates, err := req.ToDates()
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.booking.Book(c.Request.Context(), commands.BookReservationInput{
		ItemID:         req.ItemID,
		RenterID:       userID,
		Dates:          dates,
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Description Get a reservation visible to its renter or the item owner
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrRenterNotAuthenticated)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description List reservations made by the current user, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrRenterNotAuthenticated)
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.ListByRenter(c.Request.Context(), userID, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Change reservation status
// @Description Move a reservation along its lifecycle
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrRenterNotAuthenticated)
		return
	}
	var req reqdto.UpdateStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	to, err := req.ToStatus()
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.lifecycle.Transition(c.Request.Context(), commands.TransitionInput{
		ReservationID: id,
		ActorID:       userID,
		To:            to,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List item reservations
// @Description List every reservation of an item. Owner only.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/reservations [get]
func (h *ReservationHandler) ListByItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrRenterNotAuthenticated)
		return
	}

	views, err := h.q.ListByItem(c.Request.Context(), userID, itemID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// idempotencyKey returns uuid.Nil when the header is absent.
func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
