package catalog

import (
	"errors"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrServiceNotFound = errors.New("serviço não encontrado")

var defaultCatalog = []domain.BusinessService{
	{
		ID:          "lead-generation",
		Name:        "Lead Generation",
		Category:    "prospecting",
		Description: "Listas de contatos qualificados de acordo com o seu ICP.",
		Features:    []string{"Contatos verificados", "Filtro por ICP", "Entrega semanal"},
		PriceLabel:  "A partir de $499/mês",
	},
	{
		ID:          "data-enrichment",
		Name:        "Data Enrichment",
		Category:    "data",
		Description: "Completa planilhas de leads com email, telefone e dados da empresa.",
		Features:    []string{"Upload de CSV", "8 campos de saída", "Resultado por email"},
		PriceLabel:  "$0.10 por contato",
	},
	{
		ID:          "meeting-booking",
		Name:        "Meeting Booking",
		Category:    "outreach",
		Description: "Campanhas de outbound que terminam em reuniões agendadas.",
		Features:    []string{"Sequências multicanal", "Agenda integrada", "Relatório de conversão"},
		PriceLabel:  "Sob consulta",
	},
	{
		ID:          "account-research",
		Name:        "Account Research",
		Category:    "data",
		Description: "Briefing da empresa e dos decisores antes de cada reunião.",
		Features:    []string{"Perguntas personalizadas", "Sinais de compra", "Entrega no Slack ou CRM"},
		PriceLabel:  "$49 por conta",
	},
}

type CatalogService interface {
	List(category string) []domain.BusinessService
	Get(id string) (*domain.BusinessService, error)
	Count() int
}

type Service struct {
	services []domain.BusinessService
}

func NewService() *Service {
	return &Service{services: defaultCatalog}
}

// List devolve o catálogo, filtrado por categoria quando informada
func (s *Service) List(category string) []domain.BusinessService {
	category = strings.TrimSpace(category)

	out := make([]domain.BusinessService, 0, len(s.services))
	for _, service := range s.services {
		if category == "" || strings.EqualFold(service.Category, category) {
			out = append(out, service)
		}
	}
	return out
}

func (s *Service) Get(id string) (*domain.BusinessService, error) {
	for _, service := range s.services {
		if service.ID == id {
			found := service
			return &found, nil
		}
	}
	return nil, ErrServiceNotFound
}

func (s *Service) Count() int {
	return len(s.services)
}
