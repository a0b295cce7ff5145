package domain

import (
	"errors"
	"time"
)

var ErrUnknownChannel = errors.New("canal de entrega desconhecido")

// Canais de entrega de notificações
const (
	ChannelEmail = "email"
	ChannelSlack = "slack"
	ChannelCRM   = "crm"
)

type LoadState string

const (
	LoadStateIdle    LoadState = "idle"
	LoadStateLoading LoadState = "loading"
	LoadStateLoaded  LoadState = "loaded"
	LoadStateError   LoadState = "error"
)

type SaveState string

const (
	SaveStateIdle   SaveState = "idle"
	SaveStateSaving SaveState = "saving"
	SaveStateSaved  SaveState = "saved"
	SaveStateError  SaveState = "error"
)

type DeliveryChannels struct {
	Email bool `json:"email"`
	Slack bool `json:"slack"`
	CRM   bool `json:"crm"`
}

func DefaultDeliveryChannels() DeliveryChannels {
	return DeliveryChannels{Email: true, Slack: true, CRM: false}
}

func (d *DeliveryChannels) Toggle(channel string) error {
	switch channel {
	case ChannelEmail:
		d.Email = !d.Email
	case ChannelSlack:
		d.Slack = !d.Slack
	case ChannelCRM:
		d.CRM = !d.CRM
	default:
		return ErrUnknownChannel
	}
	return nil
}

// QuestionCatalog contém as perguntas de insight disponíveis por categoria
var QuestionCatalog = map[string][]string{
	"company": {
		"What is the company's main product?",
		"Who are their main competitors?",
		"What recent funding did they raise?",
		"What technologies do they use?",
	},
	"decision_makers": {
		"Who is the key decision maker?",
		"What is their background?",
		"Which topics do they post about?",
	},
	"buying_signals": {
		"Are they hiring for relevant roles?",
		"Did they announce an expansion?",
		"Are they evaluating new vendors?",
	},
}

// QuestionCategories define a ordem de exibição das categorias
var QuestionCategories = []string{"company", "decision_makers", "buying_signals"}

// QuestionSelection mapeia categoria para as perguntas escolhidas, em ordem
type QuestionSelection map[string][]string

func DefaultQuestionSelection() QuestionSelection {
	return QuestionSelection{
		"company":         {QuestionCatalog["company"][0], QuestionCatalog["company"][1]},
		"decision_makers": {QuestionCatalog["decision_makers"][0]},
		"buying_signals":  {QuestionCatalog["buying_signals"][0]},
	}
}

func (q QuestionSelection) Toggle(category, question string) {
	q[category] = Toggle(q[category], question)
}

func (q QuestionSelection) Count() int {
	total := 0
	for _, questions := range q {
		total += len(questions)
	}
	return total
}

func (q QuestionSelection) Clone() QuestionSelection {
	out := make(QuestionSelection, len(q))
	for category, questions := range q {
		out[category] = append([]string(nil), questions...)
	}
	return out
}

// SettingsDraft é a cópia local e editável do painel de configurações de um usuário
type SettingsDraft struct {
	UserID           string            `json:"user_id"`
	Channels         DeliveryChannels  `json:"channels"`
	Questions        QuestionSelection `json:"questions"`
	ICP              ICPCriteria       `json:"icp"`
	DetailExpanded   bool              `json:"detail_expanded"`
	LoadState        LoadState         `json:"load_state"`
	SaveState        SaveState         `json:"save_state"`
	Message          string            `json:"message,omitempty"`
	MessageExpiresAt *time.Time        `json:"message_expires_at,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func NewSettingsDraft(userID string, now time.Time) *SettingsDraft {
	return &SettingsDraft{
		UserID:    userID,
		Channels:  DefaultDeliveryChannels(),
		Questions: DefaultQuestionSelection(),
		ICP: ICPCriteria{
			EmployeeSizes: []string{},
			FoundedYears:  []string{},
		},
		LoadState: LoadStateIdle,
		SaveState: SaveStateIdle,
		UpdatedAt: now,
	}
}

// SetTransientMessage mostra uma mensagem que some depois de ttl
func (d *SettingsDraft) SetTransientMessage(msg string, now time.Time, ttl time.Duration) {
	expiresAt := now.Add(ttl)
	d.Message = msg
	d.MessageExpiresAt = &expiresAt
}

// SetPersistentMessage mostra uma mensagem que fica até a próxima ação
func (d *SettingsDraft) SetPersistentMessage(msg string) {
	d.Message = msg
	d.MessageExpiresAt = nil
}

// Expire limpa a mensagem temporária vencida e volta o salvamento para idle
func (d *SettingsDraft) Expire(now time.Time) {
	if d.MessageExpiresAt == nil || now.Before(*d.MessageExpiresAt) {
		return
	}

	d.Message = ""
	d.MessageExpiresAt = nil
	if d.SaveState == SaveStateSaved {
		d.SaveState = SaveStateIdle
	}
}

// SettingsView é o que a página de configurações renderiza
type SettingsView struct {
	*SettingsDraft
	QuestionCount int        `json:"question_count"`
	Options       ICPOptions `json:"options"`
}

func NewSettingsView(draft *SettingsDraft) *SettingsView {
	return &SettingsView{
		SettingsDraft: draft,
		QuestionCount: draft.Questions.Count(),
		Options:       DefaultICPOptions(),
	}
}

// Clone devolve uma cópia independente do rascunho
func (d *SettingsDraft) Clone() *SettingsDraft {
	out := *d
	out.Questions = d.Questions.Clone()
	out.ICP.EmployeeSizes = append([]string{}, d.ICP.EmployeeSizes...)
	out.ICP.FoundedYears = append([]string{}, d.ICP.FoundedYears...)
	if d.MessageExpiresAt != nil {
		expiresAt := *d.MessageExpiresAt
		out.MessageExpiresAt = &expiresAt
	}
	return &out
}
