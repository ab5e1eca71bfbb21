package api

import (
	"net/http"

	reqdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/request"
	resdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/response"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/httperr"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Item month availability
// @Description Classify every day of a month for an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/availability [get]
func (h *AvailabilityHandler) Month(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}
	var q reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	month, err := q.ToMonth()
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.q.MonthAvailability(c.Request.Context(), itemID, month)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
