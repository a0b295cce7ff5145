package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/draftstore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/icp"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/icp/icpclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/meeting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/profiling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	health := map[string]handler.Pinger{"postgres": pgConn}

	store, sweeper, redisClient := draftStore(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
		health["redis"] = redisPinger{client: redisClient}
	}

	meetingRepo := repository.NewMeetingRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	logrus.WithField("icp_api_url", cfg.ICPBackend.URL).Info("Backend de ICP configurado")
	icpIntegrator := icp.New(icpclient.NewClient(cfg))

	settingsService := profiling.NewService(icpIntegrator, store, authenticating.SessionTokenProvider{})
	catalogService := catalog.NewService()
	meetingService := meeting.NewService(meetingRepo, settingsService, catalogService)
	enrichmentService := enriching.NewService(cfg)

	draftCleanupService := scheduler.NewDraftCleanupService(sweeper, cfg)
	if err := draftCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de rascunhos")
	} else {
		logrus.Info("Agendador de limpeza de rascunhos iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Settings:      settingsService,
		Enrichment:    enrichmentService,
		Meetings:      meetingService,
		Catalog:       catalogService,
		CronJobs: handler.CronJobServices{
			DraftCleanupService: draftCleanupService,
		},
		Health: health,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// draftStore usa Redis quando REDIS_URL está definido, senão guarda em memória
func draftStore(ctx context.Context, cfg *config.Config) (draftstore.DraftStore, scheduler.DraftSweeper, *redis.Client) {
	if cfg.Redis.URL == "" {
		logrus.Info("Rascunhos de configurações guardados em memória")
		store := draftstore.NewMemoryStore()
		return store, store, nil
	}

	client, err := draftstore.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("ttl", cfg.Drafts.TTL.String()).Info("Rascunhos de configurações guardados no Redis")
	return draftstore.NewRedisStore(client, cfg.Drafts.TTL), nil, client
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
