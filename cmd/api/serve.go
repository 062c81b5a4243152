package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fundacoes_backoffice/internal/adapter/http/routes"
	"fundacoes_backoffice/internal/adapter/persistence/memory"
	"fundacoes_backoffice/internal/adapter/persistence/repository"
	"fundacoes_backoffice/internal/config"
	"fundacoes_backoffice/internal/infrastructure/database"
	"fundacoes_backoffice/internal/infrastructure/events"
	"fundacoes_backoffice/internal/infrastructure/maps"
	"fundacoes_backoffice/internal/infrastructure/observability"
	"fundacoes_backoffice/internal/infrastructure/payments"
	"fundacoes_backoffice/internal/infrastructure/resilience"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "fundacoes-backoffice"

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

// repositories is the storage of one process, backed either by the memory
// store or by DynamoDB.
type repositories struct {
	rules     interfaces.ITravelPricingRuleRepository
	settings  interfaces.ISettingsRepository
	clients   interfaces.IClientRepository
	teams     interfaces.ITeamRepository
	budgets   interfaces.IBudgetRepository
	jobs      interfaces.IJobRepository
	sequences interfaces.ISequenceRepository
	cash      interfaces.ICashTransactionRepository
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("storage", cfg.StorageType),
		zap.String("timezone", cfg.Timezone),
		zap.Bool("google_maps", cfg.GoogleMapsAPIKey != ""),
		zap.Bool("payment_gateway_mock", cfg.PaymentGatewayMock),
		zap.String("job_events_stream", cfg.JobEventsStream),
	)

	shutdownTracer, err := observability.InitTracer(cfg.OTLPEndpoint, serviceName)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer shutdownTracer(context.Background()) //nolint:errcheck

	metrics := observability.NewMetrics()

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	var routing interfaces.IRoutingGateway
	mapsGateway, err := maps.NewGoogleMapsGateway(maps.Config{
		APIKey:  cfg.GoogleMapsAPIKey,
		Timeout: cfg.GoogleMapsTimeout,
	}, metrics, logger)
	switch {
	case err == nil:
		routing = mapsGateway
	case errors.Is(err, interfaces.ErrRoutingNotConfigured):
		logger.Warn("google maps not configured, distance quotes unavailable")
	default:
		return fmt.Errorf("google maps gateway: %w", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, resilience.BreakerConfig{}, metrics, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	publisher, err := buildPublisher(ctx, cfg, logger)
	if err != nil {
		return err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("JWT_SECRET not set, using a random secret; field tokens will not survive a restart")
	}

	distance := usecase.NewDistanceUseCase(repos.settings, repos.rules, routing, logger)
	uc := routes.UseCases{
		Distance:      distance,
		TravelPricing: usecase.NewTravelPricingUseCase(repos.rules, logger),
		Settings:      usecase.NewSettingsUseCase(repos.settings, logger),
		Clients:       usecase.NewClientUseCase(repos.clients, logger),
		Teams:         usecase.NewTeamUseCase(repos.teams, cfg.BcryptCost, logger),
		Budgets: usecase.NewBudgetUseCase(usecase.BudgetUseCaseDeps{
			Budgets:   repos.budgets,
			Clients:   repos.clients,
			Teams:     repos.teams,
			Sequences: repos.sequences,
			Distance:  distance,
			Events:    publisher,
			Location:  cfg.Location(),
			Logger:    logger,
		}),
		Jobs: usecase.NewJobUseCase(repos.jobs, publisher, logger),
		CashRegister: usecase.NewCashRegisterUseCase(repos.cash, repos.jobs, paymentGateway, usecase.PaymentSettings{
			Mock:            cfg.PaymentGatewayMock,
			AccessToken:     cfg.MercadoPagoAccessToken,
			TestPayerEmail:  cfg.TestPayerEmail,
			TestPayerUserID: cfg.TestPayerUserID,
		}, logger),
		FieldAuth: usecase.NewFieldAuthUseCase(repos.teams, secret, cfg.JWTTTL, logger),
	}

	router := routes.NewRouter(uc, cfg.Location(), metrics, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.StorageType == config.StorageMemory {
		store := memory.NewStore()
		return repositories{
			rules:     memory.NewTravelPricingRuleRepository(store),
			settings:  memory.NewSettingsRepository(store),
			clients:   memory.NewClientRepository(store),
			teams:     memory.NewTeamRepository(store),
			budgets:   memory.NewBudgetRepository(store),
			jobs:      memory.NewJobRepository(store),
			sequences: memory.NewSequenceRepository(store),
			cash:      memory.NewCashTransactionRepository(store),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, awsConfig(cfg))
	if err != nil {
		return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	t := cfg.Tables
	return repositories{
		rules:     repository.NewTravelPricingRuleDynamoRepository(ddb, t.TravelPricingRules),
		settings:  repository.NewSettingsDynamoRepository(ddb, t.Settings),
		clients:   repository.NewClientDynamoRepository(ddb, t.Clients),
		teams:     repository.NewTeamDynamoRepository(ddb, t.Teams),
		budgets:   repository.NewBudgetDynamoRepository(ddb, t.Budgets, t.Jobs),
		jobs:      repository.NewJobDynamoRepository(ddb, t.Jobs),
		sequences: repository.NewSequenceDynamoRepository(ddb, t.Counters),
		cash:      repository.NewCashTransactionDynamoRepository(ddb, t.CashTransactions, t.Counters),
	}, nil
}

func buildPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IJobEventPublisher, error) {
	if cfg.JobEventsStream == "" {
		return events.NewLogPublisher(logger), nil
	}
	client, err := database.ConnectKinesis(ctx, awsConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect kinesis: %w", err)
	}
	logger.Info("streaming job events to kinesis", zap.String("stream", cfg.JobEventsStream))
	return events.NewKinesisPublisher(client, cfg.JobEventsStream, logger), nil
}

func awsConfig(cfg *config.Config) database.AWSConfig {
	return database.AWSConfig{
		Region:           cfg.AWSRegion,
		AccessKeyID:      cfg.AWSAccessKeyID,
		SecretAccessKey:  cfg.AWSSecretAccessKey,
		DynamoDBEndpoint: cfg.DynamoDBEndpoint,
		KinesisEndpoint:  cfg.KinesisEndpoint,
	}
}
