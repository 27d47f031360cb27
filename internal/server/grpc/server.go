// Package grpc exposes the user and weather services over gRPC, with a
// unary interceptor chain handling request logging, rate limiting and the
// credential gate.
package grpc

import (
	"context"
	"net"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"

	"github.com/climatechart/server/internal/logging"
	pb "github.com/climatechart/server/internal/proto"
	"github.com/climatechart/server/internal/server/apikeys"
	"github.com/climatechart/server/internal/server/config"
	"github.com/climatechart/server/internal/server/mail"
	"github.com/climatechart/server/internal/server/users"
	"github.com/climatechart/server/internal/server/weather"
)

// UserAccounts is the account-service surface the handlers need.
type UserAccounts interface {
	SignUp(ctx context.Context, name, email, password string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	ConfirmEmail(ctx context.Context, email string) error
}

// CodeLedger issues and confirms email verification codes.
type CodeLedger interface {
	Issue(ctx context.Context, email string) (string, error)
	Confirm(ctx context.Context, email, code string) error
}

// KeyLedger issues and looks up API keys.
type KeyLedger interface {
	Create(ctx context.Context, userEmail string) (*apikeys.Key, error)
	Get(ctx context.Context, userEmail string) (*apikeys.Key, error)
}

// ForecastProvider serves daily forecasts.
type ForecastProvider interface {
	GetDaily(ctx context.Context, city string) (*weather.Forecast, error)
}

// Gate decides whether a caller's credentials admit a method call.
type Gate interface {
	Authorize(ctx context.Context, method, apiKey, userEmail string) error
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	pb.UnimplementedWeatherServiceServer

	address         string
	apiKeyHeader    string
	userEmailHeader string

	users    UserAccounts
	codes    CodeLedger
	keys     KeyLedger
	forecast ForecastProvider
	gate     Gate
	mailer   mail.Mailer

	validate *validator.Validate
	limiter  *callerLimiter
	logger   logging.Logger
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, ua UserAccounts, cl CodeLedger,
	kl KeyLedger, fp ForecastProvider, gate Gate, mailer mail.Mailer) (*GRPCServer, error) {
	return &GRPCServer{
		address:         cfg.EndpointAddrGRPC,
		apiKeyHeader:    cfg.APIKeyHeader,
		userEmailHeader: cfg.UserEmailHeader,
		users:           ua,
		codes:           cl,
		keys:            kl,
		forecast:        fp,
		gate:            gate,
		mailer:          mailer,
		validate:        validator.New(),
		limiter:         newCallerLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		logger:          l.With("module", "grpc_server"),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.logInterceptor,
		s.rateLimitInterceptor,
		s.authInterceptor,
	))

	pb.RegisterUserServiceServer(srv, s)
	pb.RegisterWeatherServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
