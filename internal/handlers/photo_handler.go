package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booktable/internal/dto"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/httpresp"
	"github.com/BruksfildServices01/booktable/internal/middleware"
	ucRestaurant "github.com/BruksfildServices01/booktable/internal/usecase/restaurant"
)

const maxPhotoBytes = 10 << 20

type PhotoHandler struct {
	photos *ucRestaurant.Photos
}

func NewPhotoHandler(photos *ucRestaurant.Photos) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// Upload expects a multipart form with a "file" part, optional
// "description" and "main" fields.
func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "A file part is required.")
		return
	}
	if fh.Size > maxPhotoBytes {
		httperr.BadRequest(c, "file_too_large", "Photo is too large.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "file_required", "A file part is required.")
		return
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes))
	if err != nil {
		httperr.BadRequest(c, "file_unreadable", "Could not read the file.")
		return
	}

	p, err := h.photos.Upload(c.Request.Context(), ucRestaurant.UploadPhotoInput{
		RestaurantID: id,
		ManagerID:    middleware.UserID(c),
		ContentType:  fh.Header.Get("Content-Type"),
		Body:         body,
		Description:  c.PostForm("description"),
		Main:         c.PostForm("main") == "true",
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *PhotoHandler) Presign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PresignPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	out, err := h.photos.PresignUpload(c.Request.Context(), id, middleware.UserID(c), req.ContentType)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *PhotoHandler) Attach(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AttachPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	p, err := h.photos.Attach(c.Request.Context(), id, middleware.UserID(c), req.Key, req.Description, req.Main)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, p)
}
