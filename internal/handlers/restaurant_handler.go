package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/dto"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/httpresp"
	"github.com/BruksfildServices01/booktable/internal/middleware"
	ucRestaurant "github.com/BruksfildServices01/booktable/internal/usecase/restaurant"
)

// ======================================================
// HANDLER
// ======================================================

type RestaurantHandler struct {
	create    *ucRestaurant.CreateRestaurant
	update    *ucRestaurant.UpdateRestaurant
	approve   *ucRestaurant.ApproveRestaurant
	remove    *ucRestaurant.RemoveRestaurant
	list      *ucRestaurant.ListRestaurants
	configure *ucRestaurant.ReplaceConfiguration
	details   *ucRestaurant.FetchDetails
}

func NewRestaurantHandler(
	create *ucRestaurant.CreateRestaurant,
	update *ucRestaurant.UpdateRestaurant,
	approve *ucRestaurant.ApproveRestaurant,
	remove *ucRestaurant.RemoveRestaurant,
	list *ucRestaurant.ListRestaurants,
	configure *ucRestaurant.ReplaceConfiguration,
	details *ucRestaurant.FetchDetails,
) *RestaurantHandler {
	return &RestaurantHandler{
		create:    create,
		update:    update,
		approve:   approve,
		remove:    remove,
		list:      list,
		configure: configure,
		details:   details,
	}
}

func restaurantInput(c *gin.Context, req dto.CreateRestaurantRequest) ucRestaurant.CreateRestaurantInput {
	return ucRestaurant.CreateRestaurantInput{
		ManagerID:    middleware.UserID(c),
		Name:         req.Name,
		CuisineType:  req.CuisineType,
		CostRating:   req.CostRating,
		Description:  req.Description,
		ContactPhone: req.ContactPhone,
		AddressLine:  req.AddressLine,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Timezone:     req.Timezone,
	}
}

// ======================================================
// POST /api/restaurants
// ======================================================

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	r, err := h.create.Execute(c.Request.Context(), restaurantInput(c, req))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ======================================================
// PUT /api/restaurants/:id
// ======================================================

func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	r, err := h.update.Execute(c.Request.Context(), ucRestaurant.UpdateRestaurantInput{
		RestaurantID:          id,
		CreateRestaurantInput: restaurantInput(c, req),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, r)
}

// ======================================================
// GET /api/manager/restaurants
// ======================================================

func (h *RestaurantHandler) ListMine(c *gin.Context) {
	list, err := h.list.ByManager(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// GET /api/admin/restaurants/pending
// ======================================================

func (h *RestaurantHandler) ListPending(c *gin.Context) {
	list, err := h.list.Pending(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// DELETE /api/admin/restaurants/:id
// ======================================================

func (h *RestaurantHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// GET /api/restaurants/:id
// ======================================================

func (h *RestaurantHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.details.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, d)
}

// ======================================================
// PUT /api/restaurants/:id/configuration
// ======================================================

func (h *RestaurantHandler) ReplaceConfiguration(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	hours, slots, tables := req.Models()
	if err := h.configure.Execute(c.Request.Context(), ucRestaurant.ReplaceConfigurationInput{
		RestaurantID: id,
		ManagerID:    middleware.UserID(c),
		Hours:        hours,
		Slots:        slots,
		Tables:       tables,
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// PATCH /api/admin/restaurants/:id/approval
// ======================================================

func (h *RestaurantHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := h.approve.Execute(c.Request.Context(), id, *req.Approved, middleware.UserID(c)); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
