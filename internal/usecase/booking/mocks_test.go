package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/booktable/internal/clock"
	domain "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) CreateBookingGuarded(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	args := m.Called(ctx, customerID)
	list, _ := args.Get(0).([]models.Booking)
	return list, args.Error(1)
}

func (m *mockRepo) FindConflict(
	ctx context.Context,
	customerID string,
	date clock.Date,
	from clock.TimeOfDay,
	to clock.TimeOfDay,
) (*models.Booking, error) {
	args := m.Called(ctx, customerID, date, from, to)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) MarkCancelled(ctx context.Context, b *models.Booking) (bool, error) {
	args := m.Called(ctx, b)
	return args.Bool(0), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, b *models.Booking) bool {
	return m.Called(ctx, b).Bool(0)
}

func (m *mockNotifier) SendBookingCancellation(ctx context.Context, b *models.Booking) bool {
	return m.Called(ctx, b).Bool(0)
}

type mockRestaurants struct {
	mock.Mock
}

func (m *mockRestaurants) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRestaurants) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.Restaurant)
	return r, args.Error(1)
}

func (m *mockRestaurants) SetApproved(ctx context.Context, id uint, approved bool) error {
	return m.Called(ctx, id, approved).Error(0)
}

func (m *mockRestaurants) UpdateMainPhoto(ctx context.Context, id uint, key string) error {
	return m.Called(ctx, id, key).Error(0)
}

func (m *mockRestaurants) UpdateRestaurant(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRestaurants) DeleteRestaurant(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRestaurants) ListByManager(ctx context.Context, managerID string) ([]models.Restaurant, error) {
	args := m.Called(ctx, managerID)
	list, _ := args.Get(0).([]models.Restaurant)
	return list, args.Error(1)
}

func (m *mockRestaurants) ListByApproval(ctx context.Context, approved bool) ([]models.Restaurant, error) {
	args := m.Called(ctx, approved)
	list, _ := args.Get(0).([]models.Restaurant)
	return list, args.Error(1)
}

func (m *mockRestaurants) AddPhoto(ctx context.Context, p *models.Photo) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRestaurants) ListPhotos(ctx context.Context, restaurantID uint) ([]models.Photo, error) {
	args := m.Called(ctx, restaurantID)
	list, _ := args.Get(0).([]models.Photo)
	return list, args.Error(1)
}

type mockSlots struct {
	mock.Mock
}

func (m *mockSlots) GetSlots(ctx context.Context, restaurantID uint, dayOfWeek int) ([]clock.TimeOfDay, error) {
	args := m.Called(ctx, restaurantID, dayOfWeek)
	grid, _ := args.Get(0).([]clock.TimeOfDay)
	return grid, args.Error(1)
}

func (m *mockSlots) ListSlots(ctx context.Context, restaurantID uint) ([]models.TimeSlot, error) {
	args := m.Called(ctx, restaurantID)
	list, _ := args.Get(0).([]models.TimeSlot)
	return list, args.Error(1)
}

type mockAnalytics struct {
	mock.Mock
}

func (m *mockAnalytics) CountByStatus(ctx context.Context, from, to clock.Date) (map[models.BookingStatus]int, error) {
	args := m.Called(ctx, from, to)
	out, _ := args.Get(0).(map[models.BookingStatus]int)
	return out, args.Error(1)
}

func (m *mockAnalytics) PopularRestaurants(ctx context.Context, from, to clock.Date, limit int) ([]domain.RestaurantBookings, error) {
	args := m.Called(ctx, from, to, limit)
	out, _ := args.Get(0).([]domain.RestaurantBookings)
	return out, args.Error(1)
}
