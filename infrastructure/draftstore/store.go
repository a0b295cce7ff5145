package draftstore

import (
	"context"
	"errors"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

var ErrDraftNotFound = errors.New("rascunho de configurações não encontrado")

// DraftStore guarda os rascunhos de configurações ainda não salvos, um por usuário.
// Get devolve sempre uma cópia: alterar o rascunho exige um Put.
type DraftStore interface {
	Get(ctx context.Context, userID string) (*domain.SettingsDraft, error)
	Put(ctx context.Context, draft *domain.SettingsDraft) error
	Delete(ctx context.Context, userID string) error
}
