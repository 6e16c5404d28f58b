package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	"github.com/BruksfildServices01/booktable/internal/models"
)

const keyPrefix = "booktable:restaurant"

// ConfigCache is a read-through Redis cache in front of the hours, slot
// grid and table stores. Redis failures fall back to the stores.
type ConfigCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
	hours  availability.HoursStore
	slots  availability.SlotStore
	tables availability.TableStore
}

func NewConfigCache(
	rdb *redis.Client,
	ttl time.Duration,
	log zerolog.Logger,
	hours availability.HoursStore,
	slots availability.SlotStore,
	tables availability.TableStore,
) *ConfigCache {
	return &ConfigCache{
		rdb:    rdb,
		ttl:    ttl,
		log:    log.With().Str("component", "config_cache").Logger(),
		hours:  hours,
		slots:  slots,
		tables: tables,
	}
}

func hoursKey(id uint, dow int) string {
	return fmt.Sprintf("%s:%d:hours:%d", keyPrefix, id, dow)
}

func slotsKey(id uint, dow int) string {
	return fmt.Sprintf("%s:%d:slots:%d", keyPrefix, id, dow)
}

func capacityKey(id uint) string {
	return fmt.Sprintf("%s:%d:capacity", keyPrefix, id)
}

// -------- Hours --------

func (c *ConfigCache) GetHours(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
) (*models.OperatingHours, error) {

	key := hoursKey(restaurantID, dayOfWeek)

	var cached *models.OperatingHours
	if c.read(ctx, key, &cached) {
		return cached, nil
	}

	h, err := c.hours.GetHours(ctx, restaurantID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	// a missing row is cached as JSON null
	c.write(ctx, key, h)
	return h, nil
}

func (c *ConfigCache) ListHours(
	ctx context.Context,
	restaurantID uint,
) ([]models.OperatingHours, error) {
	return c.hours.ListHours(ctx, restaurantID)
}

// -------- Slots --------

func (c *ConfigCache) GetSlots(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
) ([]clock.TimeOfDay, error) {

	key := slotsKey(restaurantID, dayOfWeek)

	var cached []clock.TimeOfDay
	if c.read(ctx, key, &cached) {
		return cached, nil
	}

	slots, err := c.slots.GetSlots(ctx, restaurantID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, slots)
	return slots, nil
}

func (c *ConfigCache) ListSlots(
	ctx context.Context,
	restaurantID uint,
) ([]models.TimeSlot, error) {
	return c.slots.ListSlots(ctx, restaurantID)
}

// -------- Tables --------

func (c *ConfigCache) TotalCapacity(
	ctx context.Context,
	restaurantID uint,
) (int, error) {

	key := capacityKey(restaurantID)

	val, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		if n, convErr := strconv.Atoi(val); convErr == nil {
			return n, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	total, err := c.tables.TotalCapacity(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	if err := c.rdb.Set(ctx, key, strconv.Itoa(total), c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return total, nil
}

func (c *ConfigCache) ListTables(
	ctx context.Context,
	restaurantID uint,
) ([]models.TableConfiguration, error) {
	return c.tables.ListTables(ctx, restaurantID)
}

// -------- Invalidation --------

func (c *ConfigCache) Invalidate(ctx context.Context, restaurantID uint) error {
	keys := make([]string, 0, 15)
	for dow := 0; dow < 7; dow++ {
		keys = append(keys, hoursKey(restaurantID, dow), slotsKey(restaurantID, dow))
	}
	keys = append(keys, capacityKey(restaurantID))

	return c.rdb.Del(ctx, keys...).Err()
}

// -------- helpers --------

func (c *ConfigCache) read(ctx context.Context, key string, out any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt")
		return false
	}
	return true
}

func (c *ConfigCache) write(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

var (
	_ availability.HoursStore  = (*ConfigCache)(nil)
	_ availability.SlotStore   = (*ConfigCache)(nil)
	_ availability.TableStore  = (*ConfigCache)(nil)
	_ availability.Invalidator = (*ConfigCache)(nil)
)
