package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/climatechart/server/internal/common"
	pb "github.com/climatechart/server/internal/proto"
)

func (s *GRPCServer) GetDaily(ctx context.Context, req *pb.GetDailyRequest) (*pb.GetDailyResponse, error) {

	city := strings.TrimSpace(req.GetCity())
	if city == "" {
		return nil, status.Error(codes.InvalidArgument, "city is required")
	}

	fc, err := s.forecast.GetDaily(ctx, city)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "City not found.")
		case errors.Is(err, common.ErrUnavailable):
			s.logger.Error(ctx, "forecast unavailable", "city", city, "error", err)
			return nil, status.Error(codes.Unavailable, "Weather data temporarily unavailable.")
		default:
			s.logger.Error(ctx, "forecast error", "city", city, "error", err)
			return nil, status.Error(codes.Internal, internalErrorMsg)
		}
	}

	records := make([]*pb.DailyRecord, 0, len(fc.Records))
	for _, r := range fc.Records {
		records = append(records, &pb.DailyRecord{
			Date:                      r.Date,
			Temperature_2MMaxC:        r.TempMaxC,
			Temperature_2MMinC:        r.TempMinC,
			PrecipitationSumMm:        r.PrecipMM,
			PressureMslMeanHpa:        r.PressureHPa,
			WindSpeed_10MMaxKmh:       r.WindMaxKMH,
			RelativeHumidity_2MMaxPct: r.HumidityPct,
		})
	}

	return &pb.GetDailyResponse{
		City:     city,
		Timezone: fc.Timezone,
		Records:  records,
	}, nil
}
