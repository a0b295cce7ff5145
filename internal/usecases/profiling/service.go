package profiling

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/draftstore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/icp"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	MessageSaveSuccess = "✅ Critérios de ICP salvos com sucesso!"
	MessageSaveFailure = "❌ Erro ao salvar critérios de ICP"
	messageFailPrefix  = "❌ "

	// SuccessMessageTTL é quanto tempo a confirmação de salvamento fica visível
	SuccessMessageTTL = 3 * time.Second
)

// TokenProvider fornece o token de sessão enviado ao backend de ICP
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type SettingsService interface {
	Mount(ctx context.Context, userID string) (*domain.SettingsView, error)
	Load(ctx context.Context, userID string) (*domain.SettingsView, error)
	ToggleEmployeeSize(ctx context.Context, userID, label string) (*domain.SettingsView, error)
	ToggleFoundedYear(ctx context.Context, userID, label string) (*domain.SettingsView, error)
	SetEnabled(ctx context.Context, userID string, enabled bool) (*domain.SettingsView, error)
	ToggleDetail(ctx context.Context, userID string) (*domain.SettingsView, error)
	ToggleChannel(ctx context.Context, userID, channel string) (*domain.SettingsView, error)
	ToggleQuestion(ctx context.Context, userID, category, question string) (*domain.SettingsView, error)
	Save(ctx context.Context, userID string) (*domain.SettingsView, error)
	Discard(ctx context.Context, userID string) error
	ICPEnabled(ctx context.Context, userID string) (bool, error)
}

type Option func(*Service)

// WithClock troca o relógio usado para expirar mensagens
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	integrator icp.ICPIntegrator
	store      draftstore.DraftStore
	tokens     TokenProvider
	locks      *userLocks
	now        func() time.Time
}

func NewService(
	integrator icp.ICPIntegrator,
	store draftstore.DraftStore,
	tokens TokenProvider,
	opts ...Option,
) *Service {
	s := &Service{
		integrator: integrator,
		store:      store,
		tokens:     tokens,
		locks:      newUserLocks(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Mount devolve o rascunho aberto ou cria um novo e carrega o estado remoto
func (s *Service) Mount(ctx context.Context, userID string) (*domain.SettingsView, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	draft, err := s.store.Get(ctx, userID)
	if err == nil {
		draft.Expire(s.now())
		return domain.NewSettingsView(draft), nil
	}
	if !errors.Is(err, draftstore.ErrDraftNotFound) {
		return nil, s.storeError(userID, err)
	}

	draft = domain.NewSettingsDraft(userID, s.now())
	s.load(ctx, draft)

	if err := s.store.Put(ctx, draft); err != nil {
		return nil, s.storeError(userID, err)
	}

	return domain.NewSettingsView(draft), nil
}

// Load busca de novo os critérios remotos para um rascunho já aberto
func (s *Service) Load(ctx context.Context, userID string) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		s.load(ctx, draft)
		return nil
	})
}

// load nunca falha para quem chama: erros ficam no LoadState e no log
func (s *Service) load(ctx context.Context, draft *domain.SettingsDraft) {
	logger := log.ForContext(ctx).WithField("user_id", draft.UserID)
	draft.LoadState = domain.LoadStateLoading

	token, err := s.tokens.Token(ctx)
	if err != nil {
		logger.WithError(err).Warn("Erro ao obter token de sessão para carregar ICP")
		draft.LoadState = domain.LoadStateError
		return
	}

	remote, err := s.integrator.FetchCriteria(ctx, token)
	if err != nil {
		logger.WithError(err).Warn("Erro ao carregar critérios de ICP")
		draft.LoadState = domain.LoadStateError
		return
	}

	draft.LoadState = domain.LoadStateLoaded
	if remote == nil {
		logger.Debug("Nenhum critério de ICP salvo no backend")
		return
	}

	draft.ICP = remote.ToCriteria(draft.ICP)
	if remote.Enabled != nil && *remote.Enabled {
		draft.DetailExpanded = true
	}

	logger.WithFields(log.Fields{
		"icp_enabled":        draft.ICP.Enabled,
		"icp_employee_sizes": draft.ICP.EmployeeSizes,
		"icp_founded_years":  draft.ICP.FoundedYears,
	}).Info("Critérios de ICP carregados")
}

func (s *Service) ToggleEmployeeSize(ctx context.Context, userID, label string) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		draft.ICP.ToggleEmployeeSize(label)
		return nil
	})
}

func (s *Service) ToggleFoundedYear(ctx context.Context, userID, label string) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		draft.ICP.ToggleFoundedYear(label)
		return nil
	})
}

func (s *Service) SetEnabled(ctx context.Context, userID string, enabled bool) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		draft.ICP.Enabled = enabled
		return nil
	})
}

func (s *Service) ToggleDetail(ctx context.Context, userID string) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		draft.DetailExpanded = !draft.DetailExpanded
		return nil
	})
}

func (s *Service) ToggleChannel(ctx context.Context, userID, channel string) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		if err := draft.Channels.Toggle(channel); err != nil {
			return NewProfilingError(ErrUnknownChannel, apiErrors.ErrInvalidRequest, userID, channel)
		}
		return nil
	})
}

func (s *Service) ToggleQuestion(ctx context.Context, userID, category, question string) (*domain.SettingsView, error) {
	if category == "" || question == "" {
		return nil, NewProfilingError(ErrMissingQuestion, apiErrors.ErrMissingRequiredData, userID, "")
	}

	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		draft.Questions.Toggle(category, question)
		return nil
	})
}

// Save envia apenas os critérios de ICP. Canais e perguntas continuam locais.
// O resultado vai para a mensagem do rascunho, nunca para o erro.
func (s *Service) Save(ctx context.Context, userID string) (*domain.SettingsView, error) {
	return s.update(ctx, userID, func(draft *domain.SettingsDraft) error {
		s.save(ctx, draft)
		return nil
	})
}

func (s *Service) save(ctx context.Context, draft *domain.SettingsDraft) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":        draft.UserID,
		"question_count": draft.Questions.Count(),
		"channels":       draft.Channels,
	})

	draft.SaveState = domain.SaveStateSaving
	draft.SetPersistentMessage("")

	token, err := s.tokens.Token(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao obter token de sessão para salvar ICP")
		s.saveFailed(draft, "")
		return
	}

	result, err := s.integrator.PushCriteria(ctx, token, draft.ICP)
	if err != nil {
		logger.WithError(err).Error("Erro ao salvar critérios de ICP")
		s.saveFailed(draft, "")
		return
	}

	if !result.Success {
		logger.WithField("reason", result.Message).Warn("Backend recusou os critérios de ICP")
		s.saveFailed(draft, result.Message)
		return
	}

	draft.SaveState = domain.SaveStateSaved
	draft.SetTransientMessage(MessageSaveSuccess, s.now(), SuccessMessageTTL)
	logger.Info("Critérios de ICP salvos")
}

func (s *Service) saveFailed(draft *domain.SettingsDraft, reason string) {
	draft.SaveState = domain.SaveStateError
	if reason == "" {
		draft.SetPersistentMessage(MessageSaveFailure)
		return
	}
	draft.SetPersistentMessage(messageFailPrefix + reason)
}

// Discard descarta o rascunho sem salvar
func (s *Service) Discard(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.store.Delete(ctx, userID); err != nil {
		return s.storeError(userID, err)
	}
	return nil
}

// ICPEnabled lê o filtro do rascunho aberto. Sem rascunho, o filtro está desligado.
func (s *Service) ICPEnabled(ctx context.Context, userID string) (bool, error) {
	draft, err := s.store.Get(ctx, userID)
	if errors.Is(err, draftstore.ErrDraftNotFound) {
		return false, nil
	}
	if err != nil {
		return false, s.storeError(userID, err)
	}
	return draft.ICP.Enabled, nil
}

func (s *Service) update(ctx context.Context, userID string, apply func(*domain.SettingsDraft) error) (*domain.SettingsView, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	draft, err := s.store.Get(ctx, userID)
	if errors.Is(err, draftstore.ErrDraftNotFound) {
		return nil, NewProfilingError(ErrSettingsNotMounted, apiErrors.ErrNotFound, userID, "")
	}
	if err != nil {
		return nil, s.storeError(userID, err)
	}

	draft.Expire(s.now())

	if err := apply(draft); err != nil {
		return nil, err
	}

	draft.UpdatedAt = s.now()
	if err := s.store.Put(ctx, draft); err != nil {
		return nil, s.storeError(userID, err)
	}

	return domain.NewSettingsView(draft), nil
}

func (s *Service) storeError(userID string, err error) error {
	log.L.WithError(err).WithField("user_id", userID).Error("Erro no armazenamento de rascunhos")
	return NewProfilingError(ErrDraftStore, apiErrors.ErrInternalServer, userID, err.Error())
}
