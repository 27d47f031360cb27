package weather

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
)

// forecastDays is how many days ahead a forecast covers; it matches the
// Open-Meteo default window.
const forecastDays = 7

// Forecast is a served forecast: the resolved city echo, its timezone and
// the daily records in date order.
type Forecast struct {
	City     string
	Timezone string
	Records  []DailyRecord
}

type Service struct {
	repo   Repository
	client Client
	logger logging.Logger
	now    func() time.Time
}

func NewService(repo Repository, client Client, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		logger: logger.With("module", "weather"),
		now:    time.Now,
	}
}

// GetDaily serves the daily forecast for a city. When the cache already
// covers the full window starting today, no upstream call is made.
// Otherwise the city is geocoded (common.ErrNotFound when it cannot be
// resolved), the forecast fetched and each city-day cached. Upstream
// connectivity faults surface as common.ErrUnavailable.
func (s *Service) GetDaily(ctx context.Context, city string) (*Forecast, error) {
	key := strings.ToLower(strings.TrimSpace(city))

	cached, err := s.repo.GetByCity(ctx, key)
	if err != nil {
		// A broken cache shouldn't take the proxy down; fall through
		// to the upstream.
		s.logger.Warn(ctx, "forecast cache read failed", "city", key, "error", err)
		cached = nil
	}

	if recs, ok := s.window(cached); ok {
		s.logger.Debug(ctx, "forecast served from cache", "city", key)
		return &Forecast{City: city, Timezone: recs[0].Timezone, Records: recs}, nil
	}

	loc, err := s.client.Geocode(ctx, city)
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: geocoding: %v", common.ErrUnavailable, err)
	}

	recs, err := s.client.FetchDaily(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: forecast fetch: %v", common.ErrUnavailable, err)
	}

	for i := range recs {
		recs[i].City = key
		if err := s.repo.Put(ctx, &recs[i]); err != nil {
			s.logger.Warn(ctx, "forecast cache write failed",
				"city", key, "date", recs[i].Date, "error", err)
		}
	}

	return &Forecast{City: city, Timezone: loc.Timezone, Records: recs}, nil
}

// window picks the records covering today through today+forecastDays-1 out
// of the cached set. The second return is false when any day is missing.
func (s *Service) window(cached []DailyRecord) ([]DailyRecord, bool) {
	if len(cached) == 0 {
		return nil, false
	}
	byDate := make(map[string]DailyRecord, len(cached))
	for _, r := range cached {
		byDate[r.Date] = r
	}

	today := s.now().UTC()
	recs := make([]DailyRecord, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		r, ok := byDate[today.AddDate(0, 0, i).Format("2006-01-02")]
		if !ok {
			return nil, false
		}
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date < recs[j].Date })
	return recs, true
}
