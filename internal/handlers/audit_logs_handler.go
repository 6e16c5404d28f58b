package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/audit"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs        *audit.Logger
	restaurants domain.Repository
}

func NewAuditLogsHandler(logs *audit.Logger, restaurants domain.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, restaurants: restaurants}
}

// List serves GET /api/restaurants/:id/audit-logs to the restaurant's
// manager or an admin.
func (h *AuditLogsHandler) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	r, err := h.restaurants.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if c.GetString(middleware.ContextUserRole) != middleware.RoleAdmin && r.ManagerID != middleware.UserID(c) {
		httperr.Forbidden(c, "not_restaurant_manager", "Not allowed.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		RestaurantID: id,
		Action:       c.Query("action"),
		Entity:       c.Query("entity"),
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	// --------------------------------------------------
	// Optional date range, "to" inclusive
	// --------------------------------------------------

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
