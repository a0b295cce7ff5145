package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/draftstore"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/goleak"
)

func newCleanupConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		DraftCleanup: config.DraftCleanup{
			CronSchedule: cron,
			MaxIdle:      time.Hour,
			Enabled:      enabled,
		},
	}
}

func TestDraftCleanupService_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	store := draftstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, domain.NewSettingsDraft("antigo", now.Add(-3*time.Hour))))
	require.NoError(t, store.Put(ctx, domain.NewSettingsDraft("recente", now.Add(-5*time.Minute))))

	service := NewDraftCleanupService(store, newCleanupConfig(true, "*/15 * * * *"))
	service.now = func() time.Time { return now }

	service.sweepIdleDrafts()

	assert.Equal(t, 1, store.Len())
	status := service.GetStatus()
	assert.Equal(t, 1, status["last_sweep_removed"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, now, status["last_sweep_completed_at"])
}

func TestDraftCleanupService_TriggerManualSync(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := draftstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, domain.NewSettingsDraft("antigo", time.Now().Add(-2*time.Hour))))

	service := NewDraftCleanupService(store, newCleanupConfig(true, "*/15 * * * *"))
	service.TriggerManualSync()

	require.Eventually(t, func() bool {
		return store.Len() == 0 && service.GetStatus()["running"] == false
	}, time.Second, 5*time.Millisecond)
}

func TestDraftCleanupService_Start(t *testing.T) {
	tests := []struct {
		name    string
		sweeper DraftSweeper
		cfg     *config.Config
		wantErr bool
	}{
		{
			name:    "Desabilitado não agenda",
			sweeper: draftstore.NewMemoryStore(),
			cfg:     newCleanupConfig(false, "*/15 * * * *"),
		},
		{
			name: "Store com TTL não agenda",
			cfg:  newCleanupConfig(true, "*/15 * * * *"),
		},
		{
			name:    "Cron inválido",
			sweeper: draftstore.NewMemoryStore(),
			cfg:     newCleanupConfig(true, "não é cron"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			service := NewDraftCleanupService(tt.sweeper, tt.cfg)
			err := service.Start(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.sweeper == nil, service.GetStatus()["ttl_managed"])
		})
	}
}
