package draftstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestMemoryStore_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	draft := domain.NewSettingsDraft("user-1", now)
	require.NoError(t, store.Put(ctx, draft))

	// Alterar a cópia local não afeta o que foi guardado
	draft.ICP.ToggleEmployeeSize("1-10")

	stored, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, stored.ICP.EmployeeSizes)

	stored.ICP.Enabled = true
	stored, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, stored.ICP.Enabled)

	require.NoError(t, store.Delete(ctx, "user-1"))
	_, err = store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// Remover algo inexistente não é erro
	assert.NoError(t, store.Delete(ctx, "user-1"))
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Put(ctx, domain.NewSettingsDraft("antigo", now.Add(-2*time.Hour))))
	require.NoError(t, store.Put(ctx, domain.NewSettingsDraft("recente", now.Add(-10*time.Minute))))
	require.NoError(t, store.Put(ctx, domain.NewSettingsDraft("limite", now.Add(-time.Hour))))

	removed := store.Sweep(now.Add(-time.Hour))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, store.Len())

	_, err := store.Get(ctx, "antigo")
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = store.Get(ctx, "limite")
	assert.NoError(t, err)
}
