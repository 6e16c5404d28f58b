package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/dto"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/httpresp"
	"github.com/BruksfildServices01/booktable/internal/middleware"
	ucBooking "github.com/BruksfildServices01/booktable/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	cancel   *ucBooking.CancelBooking
	conflict *ucBooking.CheckConflict
	list     *ucBooking.ListCustomerBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	conflict *ucBooking.CheckConflict,
	list *ucBooking.ListCustomerBookings,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		cancel:   cancel,
		conflict: conflict,
		list:     list,
	}
}

func outputDTO(out *ucBooking.BookingOutput, withEmail bool) *dto.BookingDTO {
	d := dto.FromBooking(out.Booking)
	if withEmail {
		sent := out.EmailSent
		d.EmailSent = &sent
	}
	return d
}

// ======================================================
// POST /api/bookings
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		RestaurantID: req.RestaurantID,
		CustomerID:   middleware.UserID(c),
		Email:        req.Email,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, outputDTO(out, true))
}

// ======================================================
// PATCH /api/bookings/:id/cancel
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.cancel.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, outputDTO(out, true))
}

// ======================================================
// GET /api/me/bookings
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]dto.BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, *outputDTO(&list[i], false))
	}
	httpresp.List(c, out)
}

// ======================================================
// GET /api/me/bookings/conflict?date=&time=
// ======================================================

func (h *BookingHandler) Conflict(c *gin.Context) {
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	at, ok := queryTime(c, "time")
	if !ok {
		return
	}

	res, err := h.conflict.Execute(c.Request.Context(), middleware.UserID(c), date, at)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.ConflictDTO{
		HasConflict: res.HasConflict,
		Booking:     dto.FromBooking(res.ConflictingBooking),
	})
}
