package restaurant

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/db"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/infra/repository"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// ======================================================
// FIXTURES
// ======================================================

type env struct {
	gdb     *gorm.DB
	repo    *repository.RestaurantGormRepository
	config  *repository.RestaurantConfigGormRepository
	ledger  *repository.BookingGormRepository
	reviews *repository.ReviewGormRepository
}

func openEnv(t *testing.T) *env {
	t.Helper()

	gdb, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "restaurants.db")),
		&gorm.Config{Logger: logger.Discard},
	)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(db.Models()...))

	return &env{
		gdb:     gdb,
		repo:    repository.NewRestaurantGormRepository(gdb),
		config:  repository.NewRestaurantConfigGormRepository(gdb),
		ledger:  repository.NewBookingGormRepository(gdb),
		reviews: repository.NewReviewGormRepository(gdb),
	}
}

func (e *env) restaurant(t *testing.T, manager string) *models.Restaurant {
	t.Helper()
	r, err := NewCreateRestaurant(e.repo, nil).Execute(context.Background(), CreateRestaurantInput{
		ManagerID: manager,
		Name:      "Osteria",
		Latitude:  45.46,
		Longitude: 9.19,
		Timezone:  "Europe/Rome",
	})
	require.NoError(t, err)
	return r
}

type fakePhotoStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	putErr  error
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{objects: map[string][]byte{}}
}

func (f *fakePhotoStore) Put(_ context.Context, key, _ string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = body
	return nil
}

func (f *fakePhotoStore) PresignUpload(_ context.Context, key, contentType string) (*domain.PresignedURL, error) {
	return &domain.PresignedURL{
		URL:       "https://photos.test/" + key + "?upload",
		Method:    "PUT",
		Headers:   map[string]string{"Content-Type": contentType},
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil
}

func (f *fakePhotoStore) PresignDownload(_ context.Context, key string) (*domain.PresignedURL, error) {
	return &domain.PresignedURL{URL: "https://photos.test/" + key, Method: "GET"}, nil
}

func (f *fakePhotoStore) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, keys...)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func tod(s string) *clock.TimeOfDay {
	t := clock.MustParse(s)
	return &t
}

// ======================================================
// CREATE / APPROVE
// ======================================================

func TestCreateRestaurant(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()

	r := e.restaurant(t, "mgr-1")
	assert.NotZero(t, r.ID)
	assert.False(t, r.Approved)
	assert.Equal(t, "mgr-1", r.ManagerID)

	uc := NewCreateRestaurant(e.repo, nil)

	_, err := uc.Execute(ctx, CreateRestaurantInput{ManagerID: "mgr-1", Name: "  "})
	assert.True(t, httperr.IsBusiness(err, "name_required"))

	_, err = uc.Execute(ctx, CreateRestaurantInput{ManagerID: "mgr-1", Name: "X", Latitude: 120})
	assert.True(t, httperr.IsBusiness(err, "invalid_coordinates"))

	_, err = uc.Execute(ctx, CreateRestaurantInput{Name: "X"})
	assert.True(t, httperr.IsBusiness(err, "manager_required"))

	noTZ, err := uc.Execute(ctx, CreateRestaurantInput{ManagerID: "mgr-2", Name: "Bistro"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", noTZ.Timezone)
}

func TestApproveRestaurant(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")

	uc := NewApproveRestaurant(e.repo, nil)
	require.NoError(t, uc.Execute(ctx, r.ID, true, "admin"))

	got, err := e.repo.GetRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	err = uc.Execute(ctx, 999, true, "admin")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

// ======================================================
// CONFIGURATION
// ======================================================

type countingInvalidator struct {
	ids []uint
	err error
}

func (c *countingInvalidator) Invalidate(_ context.Context, id uint) error {
	c.ids = append(c.ids, id)
	return c.err
}

func TestReplaceConfiguration(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")
	inv := &countingInvalidator{}

	uc := NewReplaceConfiguration(e.repo, e.config, inv, nil, zerolog.Nop())

	in := ReplaceConfigurationInput{
		RestaurantID: r.ID,
		ManagerID:    "mgr-1",
		Hours: []models.OperatingHours{
			{DayOfWeek: 1, OpenTime: tod("18:00"), CloseTime: tod("23:00")},
		},
		Slots: []models.TimeSlot{
			{DayOfWeek: 1, SlotTime: clock.MustParse("19:00")},
			{DayOfWeek: 1, SlotTime: clock.MustParse("18:30")},
		},
		Tables: []models.TableConfiguration{{SeatCount: 2, Quantity: 4}},
	}
	require.NoError(t, uc.Execute(ctx, in))
	assert.Equal(t, []uint{r.ID}, inv.ids)

	total, err := e.config.TotalCapacity(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	t.Run("wrong manager", func(t *testing.T) {
		bad := in
		bad.ManagerID = "someone-else"
		err := uc.Execute(ctx, bad)
		assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	})

	t.Run("invalid configuration leaves the old one", func(t *testing.T) {
		bad := in
		bad.Slots = []models.TimeSlot{{DayOfWeek: 2, SlotTime: clock.MustParse("19:00")}}
		err := uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, "slot_on_closed_day"))

		slots, err := e.config.ListSlots(ctx, r.ID)
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("invalidation failure is not fatal", func(t *testing.T) {
		failing := &countingInvalidator{err: errors.New("redis down")}
		uc := NewReplaceConfiguration(e.repo, e.config, failing, nil, zerolog.Nop())
		assert.NoError(t, uc.Execute(ctx, in))
	})
}

// ======================================================
// DETAILS
// ======================================================

func TestFetchDetails(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")
	store := newFakePhotoStore()

	require.NoError(t, NewReplaceConfiguration(e.repo, e.config, nil, nil, zerolog.Nop()).Execute(ctx, ReplaceConfigurationInput{
		RestaurantID: r.ID,
		ManagerID:    "mgr-1",
		Hours: []models.OperatingHours{
			{DayOfWeek: 1, OpenTime: tod("12:00"), CloseTime: tod("15:00")},
			{DayOfWeek: 5, OpenTime: tod("18:00"), CloseTime: tod("02:00")},
		},
		Slots: []models.TimeSlot{
			{DayOfWeek: 5, SlotTime: clock.MustParse("23:30")},
			{DayOfWeek: 1, SlotTime: clock.MustParse("13:00")},
			{DayOfWeek: 1, SlotTime: clock.MustParse("12:00")},
		},
		Tables: []models.TableConfiguration{
			{SeatCount: 2, Quantity: 3},
			{SeatCount: 6, Quantity: 1},
		},
	}))
	require.NoError(t, e.repo.AddPhoto(ctx, &models.Photo{RestaurantID: r.ID, ObjectKey: "restaurants/1/a.webp"}))

	require.NoError(t, e.reviews.AddReview(ctx, &models.Review{RestaurantID: r.ID, CustomerID: "a", Rating: 5}))
	require.NoError(t, e.reviews.AddReview(ctx, &models.Review{RestaurantID: r.ID, CustomerID: "b", Rating: 4}))

	uc := NewFetchDetails(e.repo, e.config, e.config, e.config, e.ledger, store, e.reviews, zerolog.Nop())
	d, err := uc.Execute(ctx, r.ID)
	require.NoError(t, err)

	assert.Equal(t, "Osteria", d.Restaurant.Name)
	assert.Len(t, d.Hours, 2)
	assert.Equal(t, 12, d.TotalCapacity)
	require.Len(t, d.Slots, 2)
	assert.Equal(t, 1, d.Slots[0].DayOfWeek)
	assert.Equal(t, []clock.TimeOfDay{clock.MustParse("12:00"), clock.MustParse("13:00")}, d.Slots[0].Times)
	assert.Equal(t, 5, d.Slots[1].DayOfWeek)
	require.Len(t, d.Photos, 1)
	assert.Equal(t, "https://photos.test/restaurants/1/a.webp", d.Photos[0].URL)
	assert.Zero(t, d.BookingsToday)
	assert.Len(t, d.Reviews, 2)
	assert.Equal(t, 2, d.ReviewCount)
	assert.InDelta(t, 4.5, d.AverageRating, 1e-9)

	bare, err := NewFetchDetails(e.repo, e.config, e.config, e.config, e.ledger, nil, nil, zerolog.Nop()).Execute(ctx, r.ID)
	require.NoError(t, err)
	assert.NotNil(t, bare.Reviews)
	assert.Empty(t, bare.Reviews)
	assert.Empty(t, bare.Photos[0].URL)

	_, err = uc.Execute(ctx, 999)
	assert.True(t, httperr.IsBusiness(err, "restaurant_not_found"))
}

func TestGroupSlots(t *testing.T) {
	assert.Empty(t, groupSlots(nil))

	got := groupSlots([]models.TimeSlot{
		{DayOfWeek: 0, SlotTime: clock.MustParse("10:00")},
		{DayOfWeek: 3, SlotTime: clock.MustParse("11:00")},
		{DayOfWeek: 3, SlotTime: clock.MustParse("12:00")},
	})
	require.Len(t, got, 2)
	assert.Len(t, got[1].Times, 2)
}

// ======================================================
// PHOTOS
// ======================================================

func TestUploadPhoto(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")
	store := newFakePhotoStore()
	uc := NewPhotos(e.repo, store, nil, zerolog.Nop())

	first, err := uc.Upload(ctx, UploadPhotoInput{
		RestaurantID: r.ID,
		ManagerID:    "mgr-1",
		ContentType:  "image/png",
		Body:         pngBytes(t),
		Main:         true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ObjectKey, "restaurants/"))
	assert.True(t, strings.HasSuffix(first.ObjectKey, ".webp"))
	assert.Contains(t, store.objects, first.ObjectKey)

	second, err := uc.Upload(ctx, UploadPhotoInput{
		RestaurantID: r.ID,
		ManagerID:    "mgr-1",
		ContentType:  "image/png",
		Body:         pngBytes(t),
		Main:         true,
	})
	require.NoError(t, err)

	got, err := e.repo.GetRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ObjectKey, got.MainPhotoKey)
	assert.Equal(t, []string{first.ObjectKey}, store.deleted)

	photos, err := e.repo.ListPhotos(ctx, r.ID)
	require.NoError(t, err)
	assert.Len(t, photos, 2)

	t.Run("rejects other types", func(t *testing.T) {
		_, err := uc.Upload(ctx, UploadPhotoInput{RestaurantID: r.ID, ManagerID: "mgr-1", ContentType: "image/gif", Body: []byte("GIF89a")})
		assert.True(t, httperr.IsBusiness(err, "invalid_file_type"))
	})

	t.Run("rejects undecodable bytes", func(t *testing.T) {
		_, err := uc.Upload(ctx, UploadPhotoInput{RestaurantID: r.ID, ManagerID: "mgr-1", ContentType: "image/png", Body: []byte("nope")})
		assert.True(t, httperr.IsBusiness(err, "invalid_image"))
	})

	t.Run("not the manager", func(t *testing.T) {
		_, err := uc.Upload(ctx, UploadPhotoInput{RestaurantID: r.ID, ManagerID: "intruder", ContentType: "image/png", Body: pngBytes(t)})
		assert.True(t, httperr.IsBusiness(err, "not_restaurant_manager"))
	})

	t.Run("store failure", func(t *testing.T) {
		broken := newFakePhotoStore()
		broken.putErr = errors.New("boom")
		_, err := NewPhotos(e.repo, broken, nil, zerolog.Nop()).Upload(ctx, UploadPhotoInput{
			RestaurantID: r.ID, ManagerID: "mgr-1", ContentType: "image/png", Body: pngBytes(t),
		})
		assert.Equal(t, httperr.KindUpstream, httperr.KindOf(err))
	})

	t.Run("no store configured", func(t *testing.T) {
		_, err := NewPhotos(e.repo, nil, nil, zerolog.Nop()).Upload(ctx, UploadPhotoInput{RestaurantID: r.ID, ManagerID: "mgr-1"})
		assert.True(t, httperr.IsBusiness(err, "photo_store_unavailable"))
	})
}

func TestPresignAndAttach(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")
	uc := NewPhotos(e.repo, newFakePhotoStore(), nil, zerolog.Nop())

	up, err := uc.PresignUpload(ctx, r.ID, "mgr-1", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(up.Key, ".jpg"))
	assert.Equal(t, "PUT", up.Upload.Method)

	p, err := uc.Attach(ctx, r.ID, "mgr-1", up.Key, "terrace", false)
	require.NoError(t, err)
	assert.Equal(t, "terrace", p.Description)

	_, err = uc.Attach(ctx, r.ID, "mgr-1", "restaurants/999/x.jpg", "", false)
	assert.True(t, httperr.IsBusiness(err, "invalid_photo_key"))

	_, err = uc.PresignUpload(ctx, r.ID, "mgr-1", "application/pdf")
	assert.True(t, httperr.IsBusiness(err, "invalid_file_type"))
}
