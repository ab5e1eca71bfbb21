package api

import (
	"net/http"

	resdto "github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/response"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/httperr"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/middleware"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Owner stats
// @Description Per-item reservation counts and earnings for the current owner
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OwnerStatsResponse
// @Failure 401 {object} httperr.Response
// @Router /owners/me/stats [get]
func (h *StatsHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrRenterNotAuthenticated)
		return
	}

	view, err := h.q.OwnerStats(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOwnerStatsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
