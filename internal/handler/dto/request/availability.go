package request

import (
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
)

type AvailabilityQuery struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

func (q AvailabilityQuery) ToMonth() (calendar.Month, error) {
	return calendar.NewMonth(q.Year, time.Month(q.Month))
}
