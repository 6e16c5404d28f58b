package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/booktable/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	engine *ucAvailability.Engine
	search *ucAvailability.SearchRestaurants
	nearby *ucAvailability.NearbyNow
}

func NewAvailabilityHandler(
	engine *ucAvailability.Engine,
	search *ucAvailability.SearchRestaurants,
	nearby *ucAvailability.NearbyNow,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		engine: engine,
		search: search,
		nearby: nearby,
	}
}

// ======================================================
// GET /api/restaurants/:id/availability?date=&time=&party_size=
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	at, ok := queryTime(c, "time")
	if !ok {
		return
	}
	party, ok := queryInt(c, "party_size", 0)
	if !ok {
		return
	}

	slots, err := h.engine.AvailableSlots(c.Request.Context(), ucAvailability.SlotsInput{
		RestaurantID:  id,
		Date:          date,
		RequestedTime: at,
		PartySize:     party,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// GET /api/restaurants/:id/open?date=&time=
// ======================================================

func (h *AvailabilityHandler) IsOpen(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	at, ok := queryTime(c, "time")
	if !ok {
		return
	}

	open, err := h.engine.IsOpenAt(c.Request.Context(), id, date.DayOfWeek(), at)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"open": open})
}

// ======================================================
// GET /api/search
// ======================================================

func (h *AvailabilityHandler) Search(c *gin.Context) {
	lat, ok := queryFloat(c, "lat", true)
	if !ok {
		return
	}
	lng, ok := queryFloat(c, "lng", true)
	if !ok {
		return
	}
	radius, ok := queryFloat(c, "radius_km", false)
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	at, ok := queryTime(c, "time")
	if !ok {
		return
	}
	party, ok := queryInt(c, "party_size", 2)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	results, err := h.search.Execute(c.Request.Context(), ucAvailability.SearchInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Text:      c.Query("q"),
		Date:      date,
		Time:      at,
		PartySize: party,
		Limit:     limit,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, results)
}

// ======================================================
// GET /api/nearby?lat=&lng=&radius_km=
// ======================================================

func (h *AvailabilityHandler) Nearby(c *gin.Context) {
	lat, ok := queryFloat(c, "lat", true)
	if !ok {
		return
	}
	lng, ok := queryFloat(c, "lng", true)
	if !ok {
		return
	}
	radius, ok := queryFloat(c, "radius_km", false)
	if !ok {
		return
	}

	results, err := h.nearby.Execute(c.Request.Context(), ucAvailability.NearbyInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, results)
}
