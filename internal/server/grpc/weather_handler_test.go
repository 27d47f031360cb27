package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/climatechart/server/internal/common"
	pb "github.com/climatechart/server/internal/proto"
	"github.com/climatechart/server/internal/server/weather"
)

type mockForecast struct{ mock.Mock }

func (m *mockForecast) GetDaily(ctx context.Context, city string) (*weather.Forecast, error) {
	args := m.Called(ctx, city)
	if fc, _ := args.Get(0).(*weather.Forecast); fc != nil {
		return fc, args.Error(1)
	}
	return nil, args.Error(1)
}

func newWeatherServer(fp *mockForecast) *GRPCServer {
	return &GRPCServer{forecast: fp, logger: nopLogger{}}
}

func TestGetDaily(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		fp := &mockForecast{}
		fp.On("GetDaily", mock.Anything, "London").Return(&weather.Forecast{
			City:     "London",
			Timezone: "Europe/London",
			Records: []weather.DailyRecord{{
				Date:        "2026-08-30",
				TempMaxC:    21.4,
				TempMinC:    12.1,
				PrecipMM:    0.4,
				PressureHPa: 1016.2,
				WindMaxKMH:  18.4,
				HumidityPct: 74,
			}},
		}, nil)
		s := newWeatherServer(fp)

		resp, err := s.GetDaily(context.Background(), &pb.GetDailyRequest{City: " London "})
		require.NoError(t, err)
		assert.Equal(t, "London", resp.City)
		assert.Equal(t, "Europe/London", resp.Timezone)
		require.Len(t, resp.Records, 1)
		assert.Equal(t, "2026-08-30", resp.Records[0].Date)
		assert.InDelta(t, 21.4, resp.Records[0].Temperature_2MMaxC, 1e-9)
		assert.Equal(t, int32(74), resp.Records[0].RelativeHumidity_2MMaxPct)
	})

	t.Run("empty city", func(t *testing.T) {
		s := newWeatherServer(&mockForecast{})
		_, err := s.GetDaily(context.Background(), &pb.GetDailyRequest{City: "  "})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown city", func(t *testing.T) {
		fp := &mockForecast{}
		fp.On("GetDaily", mock.Anything, "NoSuchCityXYZ").Return(nil, common.ErrNotFound)
		s := newWeatherServer(fp)

		_, err := s.GetDaily(context.Background(), &pb.GetDailyRequest{City: "NoSuchCityXYZ"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("upstream down", func(t *testing.T) {
		fp := &mockForecast{}
		fp.On("GetDaily", mock.Anything, "London").Return(nil, common.ErrUnavailable)
		s := newWeatherServer(fp)

		_, err := s.GetDaily(context.Background(), &pb.GetDailyRequest{City: "London"})
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}
