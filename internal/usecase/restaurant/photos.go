package restaurant

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/audit"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/imaging"
	"github.com/BruksfildServices01/booktable/internal/models"
)

func photoPrefix(restaurantID uint) string {
	return fmt.Sprintf("restaurants/%d/", restaurantID)
}

func newPhotoKey(restaurantID uint, ext string) string {
	return photoPrefix(restaurantID) + uuid.NewString() + ext
}

var errNoPhotoStore = httperr.ErrUpstream("photo_store_unavailable", nil)

// ======================================================
// UPLOAD
// ======================================================

type UploadPhotoInput struct {
	RestaurantID uint
	ManagerID    string
	ContentType  string
	Body         []byte
	Description  string
	Main         bool
}

type Photos struct {
	repo  domain.Repository
	store domain.PhotoStore
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewPhotos(
	repo domain.Repository,
	store domain.PhotoStore,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *Photos {
	return &Photos{
		repo:  repo,
		store: store,
		audit: audit,
		log:   log,
	}
}

// Upload normalises the image to WebP, stores it and records it.
func (uc *Photos) Upload(
	ctx context.Context,
	in UploadPhotoInput,
) (*models.Photo, error) {

	if uc.store == nil {
		return nil, errNoPhotoStore
	}

	r, err := ownedBy(ctx, uc.repo, in.RestaurantID, in.ManagerID)
	if err != nil {
		return nil, err
	}

	if !imaging.Allowed(in.ContentType) {
		return nil, httperr.ErrInvalid("invalid_file_type")
	}

	webp, err := imaging.NormalizeToWebP(bytes.NewReader(in.Body), imaging.DefaultQuality)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_image")
	}

	key := newPhotoKey(r.ID, ".webp")
	if err := uc.store.Put(ctx, key, imaging.ContentType, webp); err != nil {
		return nil, httperr.ErrUpstream("photo_store_failed", err)
	}

	return uc.record(ctx, r, in.ManagerID, key, in.Description, in.Main)
}

// ======================================================
// PRESIGNED UPLOAD
// ======================================================

type PresignedUpload struct {
	Key    string               `json:"key"`
	Upload *domain.PresignedURL `json:"upload"`
}

// PresignUpload hands out a direct upload URL; the client then calls
// Attach with the returned key.
func (uc *Photos) PresignUpload(
	ctx context.Context,
	restaurantID uint,
	managerID string,
	contentType string,
) (*PresignedUpload, error) {

	if uc.store == nil {
		return nil, errNoPhotoStore
	}

	if _, err := ownedBy(ctx, uc.repo, restaurantID, managerID); err != nil {
		return nil, err
	}

	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return nil, httperr.ErrInvalid("invalid_file_type")
	}

	key := newPhotoKey(restaurantID, ext)
	u, err := uc.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, httperr.ErrUpstream("photo_store_failed", err)
	}

	return &PresignedUpload{Key: key, Upload: u}, nil
}

func (uc *Photos) Attach(
	ctx context.Context,
	restaurantID uint,
	managerID string,
	key string,
	description string,
	main bool,
) (*models.Photo, error) {

	r, err := ownedBy(ctx, uc.repo, restaurantID, managerID)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(key, photoPrefix(restaurantID)) {
		return nil, httperr.ErrInvalid("invalid_photo_key")
	}

	return uc.record(ctx, r, managerID, key, description, main)
}

func (uc *Photos) record(
	ctx context.Context,
	r *models.Restaurant,
	actorID string,
	key string,
	description string,
	main bool,
) (*models.Photo, error) {

	p := &models.Photo{
		RestaurantID: r.ID,
		ObjectKey:    key,
		Description:  description,
		UploadedAt:   time.Now().UTC(),
	}
	if err := uc.repo.AddPhoto(ctx, p); err != nil {
		return nil, err
	}

	if main {
		old := r.MainPhotoKey
		if err := uc.repo.UpdateMainPhoto(ctx, r.ID, key); err != nil {
			return nil, err
		}
		if old != "" && old != key && uc.store != nil {
			if err := uc.store.Delete(ctx, old); err != nil {
				uc.log.Warn().Err(err).Str("key", old).Msg("old main photo not deleted")
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: r.ID,
		ActorID:      actorID,
		Action:       "photo_added",
		Entity:       "photo",
		EntityID:     &p.ID,
		Metadata:     map[string]any{"key": key, "main": main},
	})

	return p, nil
}
