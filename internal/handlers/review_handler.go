package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/dto"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/httpresp"
	"github.com/BruksfildServices01/booktable/internal/middleware"
	ucReview "github.com/BruksfildServices01/booktable/internal/usecase/review"
)

type ReviewHandler struct {
	add  *ucReview.AddReview
	list *ucReview.ListReviews
}

func NewReviewHandler(add *ucReview.AddReview, list *ucReview.ListReviews) *ReviewHandler {
	return &ReviewHandler{add: add, list: list}
}

// ======================================================
// POST /api/restaurants/:id/reviews
// ======================================================

func (h *ReviewHandler) Add(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	r, err := h.add.Execute(c.Request.Context(), ucReview.AddReviewInput{
		RestaurantID: id,
		CustomerID:   middleware.UserID(c),
		UserName:     req.UserName,
		Rating:       req.Rating,
		Text:         req.ReviewText,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ======================================================
// GET /api/restaurants/:id/reviews
// ======================================================

func (h *ReviewHandler) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}
