package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/booktable/internal/usecase/booking"
)

type AnalyticsHandler struct {
	reservations *ucBooking.ReservationAnalytics
}

func NewAnalyticsHandler(reservations *ucBooking.ReservationAnalytics) *AnalyticsHandler {
	return &AnalyticsHandler{reservations: reservations}
}

// Reservations serves GET /api/admin/analytics/reservations?from=&to=.
// Without a range it reports the current month.
func (h *AnalyticsHandler) Reservations(c *gin.Context) {
	from, ok := optionalQueryDate(c, "from")
	if !ok {
		return
	}
	to, ok := optionalQueryDate(c, "to")
	if !ok {
		return
	}

	report, err := h.reservations.Execute(c.Request.Context(), ucBooking.AnalyticsInput{From: from, To: to})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, report)
}
