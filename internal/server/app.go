// Package server initializes and runs the ClimateChart backend: it wires
// the DynamoDB store, the credential subsystems, the weather proxy and the
// gRPC endpoint, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/climatechart/server/internal/logging"
	"github.com/climatechart/server/internal/server/accesspolicy"
	"github.com/climatechart/server/internal/server/apikeys"
	"github.com/climatechart/server/internal/server/config"
	"github.com/climatechart/server/internal/server/mail"
	"github.com/climatechart/server/internal/server/store"
	"github.com/climatechart/server/internal/server/users"
	"github.com/climatechart/server/internal/server/verifications"
	"github.com/climatechart/server/internal/server/weather"

	gs "github.com/climatechart/server/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	users    *users.Service
	codes    *verifications.Ledger
	keys     *apikeys.Ledger
	forecast *weather.Service
	policy   *accesspolicy.Policy
	mailer   mail.Mailer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	client, err := store.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}
	store.Bootstrap(ctx, client, cfg, logger)

	us := users.NewService(users.NewDynamoRepository(client, cfg.UsersTable), logger)
	codes := verifications.NewLedger(
		verifications.NewDynamoRepository(client, cfg.VerificationsTable),
		cfg.VerificationCodeTTL, logger)
	keys := apikeys.NewLedger(
		apikeys.NewDynamoRepository(client, cfg.APIKeysTable),
		cfg.APIKeyTTL, logger)

	forecast := weather.NewService(
		weather.NewDynamoRepository(client, cfg.WeatherTable),
		weather.NewOpenMeteoClient(cfg.GeocodingBaseURL, cfg.ForecastBaseURL),
		logger)

	policy := accesspolicy.New(
		accesspolicy.ParseMethodList(cfg.PublicMethods),
		accesspolicy.ParseMethodList(cfg.APIKeyMethods),
		keys, logger)

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom,
		cfg.SMTPUsername, cfg.SMTPPassword)

	return &App{
		config:   cfg,
		logger:   logger,
		users:    us,
		codes:    codes,
		keys:     keys,
		forecast: forecast,
		policy:   policy,
		mailer:   mailer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config, app.logger, app.users, app.codes,
		app.keys, app.forecast, app.policy, app.mailer)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
