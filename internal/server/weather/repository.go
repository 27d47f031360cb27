package weather

import "context"

type Repository interface {
	// Put upserts one city-day record; caching is idempotent, so a
	// concurrent writer winning the race is not an error.
	Put(ctx context.Context, rec *DailyRecord) error

	// GetByCity returns all cached records for the city in date order.
	// An empty slice means a cache miss, not an error.
	GetByCity(ctx context.Context, city string) ([]DailyRecord, error)
}
