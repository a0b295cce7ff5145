package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// DraftSweeper remove rascunhos sem alteração desde cutoff
type DraftSweeper interface {
	Sweep(cutoff time.Time) int
}

// DraftCleanupConfig representa a configuração da limpeza de rascunhos
type DraftCleanupConfig struct {
	CronSchedule string
	MaxIdle      time.Duration
	Enabled      bool
}

// DraftCleanupService descarta rascunhos de configurações abandonados sem salvar
type DraftCleanupService struct {
	scheduler            *gocron.Scheduler
	config               DraftCleanupConfig
	sweeper              DraftSweeper
	now                  func() time.Time
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepRemoved     int
}

// NewDraftCleanupService recebe sweeper nil quando o store expira sozinho (Redis)
func NewDraftCleanupService(sweeper DraftSweeper, appConfig *config.Config) *DraftCleanupService {
	cleanupConfig := DraftCleanupConfig{
		CronSchedule: appConfig.DraftCleanup.CronSchedule,
		MaxIdle:      appConfig.DraftCleanup.MaxIdle,
		Enabled:      appConfig.DraftCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"max_idle":      cleanupConfig.MaxIdle.String(),
		"enabled":       cleanupConfig.Enabled,
		"has_sweeper":   sweeper != nil,
	}).Info("Configuração da limpeza de rascunhos carregada")

	return &DraftCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		sweeper:   sweeper,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *DraftCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de rascunhos desabilitada por configuração")
		return nil
	}

	if s.sweeper == nil {
		logrus.Info("Rascunhos expiram pelo TTL do store, limpeza agendada não é necessária")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de rascunhos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepIdleDrafts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de rascunhos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de rascunhos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DraftCleanupService) sweepIdleDrafts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de rascunhos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSweepStartedAt = s.now()
	s.syncMutex.Unlock()

	cutoff := s.now().Add(-s.config.MaxIdle)
	removed := s.sweeper.Sweep(cutoff)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSweepCompletedAt = s.now()
	s.lastSweepRemoved = removed
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"cutoff":  cutoff.Format(time.RFC3339),
	}).Info("Limpeza de rascunhos concluída")
}

// TriggerManualSync inicia manualmente uma limpeza
func (s *DraftCleanupService) TriggerManualSync() {
	if s.sweeper == nil {
		logrus.Info("Store sem limpeza manual, rascunhos expiram pelo TTL")
		return
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de rascunhos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de rascunhos")
	go s.sweepIdleDrafts()
}

// GetStatus retorna o status atual do agendador
func (s *DraftCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":            s.config.Enabled,
		"sync_cron":               s.config.CronSchedule,
		"max_idle":                s.config.MaxIdle.String(),
		"ttl_managed":             s.sweeper == nil,
		"running":                 s.syncRunning,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_removed":      s.lastSweepRemoved,
	}
}
