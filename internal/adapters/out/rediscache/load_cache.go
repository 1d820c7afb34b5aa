// Package rediscache provides a Redis-backed implementation of the load
// cache. Cached loads feed the optimistic phase of action handling; the cache
// is never the source of truth, so every failure degrades to a miss and every
// committed mutation invalidates instead of updating in place.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

const defaultTTL = 5 * time.Minute

// loadDoc is the JSON shape of a cached load. The stop field names match the
// jsonb document in the loads table.
type loadDoc struct {
	ID        kernel.UUID  `json:"id"`
	FleetID   kernel.UUID  `json:"fleetId"`
	Status    string       `json:"status"`
	DriverID  *kernel.UUID `json:"driverId"`
	VehicleID *kernel.UUID `json:"vehicleId"`
	Stops     []stopDoc    `json:"stops"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type stopDoc struct {
	Type          string     `json:"type"`
	Sequence      int        `json:"sequence"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	ActualTime    *time.Time `json:"actualTime"`
	Completed     bool       `json:"completed"`
}

// RedisLoadCache implements ports.LoadCache over a Redis client.
type RedisLoadCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLoadCache creates a cache with the default TTL.
func NewRedisLoadCache(client *redis.Client) *RedisLoadCache {
	return NewRedisLoadCacheWithTTL(client, defaultTTL)
}

// NewRedisLoadCacheWithTTL creates a cache with an explicit TTL.
func NewRedisLoadCacheWithTTL(client *redis.Client, ttl time.Duration) *RedisLoadCache {
	return &RedisLoadCache{client: client, ttl: ttl}
}

// GetLoad retrieves a cached load. A missing key, a Redis failure, or a
// document that no longer deserializes all come back as (nil, nil): the
// caller falls through to authoritative storage either way.
func (c *RedisLoadCache) GetLoad(ctx context.Context, fleetID, loadID kernel.UUID) (*load.Load, error) {
	raw, err := c.client.Get(ctx, loadKey(fleetID, loadID)).Bytes()
	if err != nil {
		return nil, nil
	}

	var doc loadDoc
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, nil
	}

	restored, err := toDomain(doc)
	if err != nil {
		return nil, nil
	}

	return restored, nil
}

// PutLoad stores a load under its fleet-scoped key with the configured TTL.
func (c *RedisLoadCache) PutLoad(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	return c.client.Set(ctx, loadKey(aggregate.FleetID(), aggregate.ID()), raw, c.ttl).Err()
}

// InvalidateLoad drops the cached load and the fleet's load listing.
func (c *RedisLoadCache) InvalidateLoad(ctx context.Context, fleetID, loadID kernel.UUID) error {
	return c.client.Del(ctx, loadKey(fleetID, loadID), fleetLoadsKey(fleetID)).Err()
}

func loadKey(fleetID, loadID kernel.UUID) string {
	return fmt.Sprintf("fleet:%s:load:%s", fleetID, loadID)
}

func fleetLoadsKey(fleetID kernel.UUID) string {
	return fmt.Sprintf("fleet:%s:loads", fleetID)
}

func fromDomain(aggregate *load.Load) loadDoc {
	stops := aggregate.Stops()
	docs := make([]stopDoc, 0, len(stops))
	for _, s := range stops {
		docs = append(docs, stopDoc{
			Type:          s.Type().String(),
			Sequence:      s.Sequence(),
			ScheduledTime: s.ScheduledTime(),
			ActualTime:    s.ActualTime(),
			Completed:     s.IsCompleted(),
		})
	}

	return loadDoc{
		ID:        aggregate.ID(),
		FleetID:   aggregate.FleetID(),
		Status:    aggregate.Status().String(),
		DriverID:  aggregate.DriverID(),
		VehicleID: aggregate.VehicleID(),
		Stops:     docs,
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(doc loadDoc) (*load.Load, error) {
	status, err := load.StatusFromString(doc.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]load.Stop, 0, len(doc.Stops))
	for _, d := range doc.Stops {
		stopType, typeErr := load.StopTypeFromString(d.Type)
		if typeErr != nil {
			return nil, typeErr
		}
		stop, stopErr := load.RestoreStop(stopType, d.Sequence, d.ScheduledTime, d.ActualTime, d.Completed)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return load.RestoreLoad(doc.ID, doc.FleetID, status, doc.DriverID, doc.VehicleID, stops, doc.UpdatedAt)
}
