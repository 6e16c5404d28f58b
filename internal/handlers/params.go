package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/httperr"
)

// The helpers below write a 400 and return false when the value is bad.

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func queryDate(c *gin.Context, name string) (clock.Date, bool) {
	d, err := clock.ParseDate(c.Query(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return clock.Date{}, false
	}
	return d, true
}

// optionalQueryDate returns the zero date when the parameter is absent.
func optionalQueryDate(c *gin.Context, name string) (clock.Date, bool) {
	if c.Query(name) == "" {
		return clock.Date{}, true
	}
	return queryDate(c, name)
}

func queryTime(c *gin.Context, name string) (clock.TimeOfDay, bool) {
	t, err := clock.Parse(c.Query(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return 0, false
	}
	return t, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Invalid number.")
		return 0, false
	}
	return v, true
}

func queryFloat(c *gin.Context, name string, required bool) (float64, bool) {
	raw := c.Query(name)
	if raw == "" && !required {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Invalid number.")
		return 0, false
	}
	return v, true
}
