package domain

import "github.com/vfg2006/sales-dashboard-api/pkg/rangemap"

// EmployeeSizeRanges traduz as faixas de número de funcionários
var EmployeeSizeRanges = rangemap.MustNew(
	rangemap.Pair{UI: "1-10", Backend: "1-10"},
	rangemap.Pair{UI: "11-50", Backend: "11-50"},
	rangemap.Pair{UI: "51-200", Backend: "51-100"},
	rangemap.Pair{UI: "201-500", Backend: "101-500"},
	rangemap.Pair{UI: "501-1000", Backend: "500+"},
	rangemap.Pair{UI: "1001-5000", Backend: "500+"},
	rangemap.Pair{UI: "5000+", Backend: "500+"},
)

// FoundedYearRanges traduz as faixas de ano de fundação
var FoundedYearRanges = rangemap.MustNew(
	rangemap.Pair{UI: "Before 2000", Backend: "pre-2000"},
	rangemap.Pair{UI: "2000-2009", Backend: "2000-2009"},
	rangemap.Pair{UI: "2010-2014", Backend: "2010-2014"},
	rangemap.Pair{UI: "2015-2019", Backend: "2015-2019"},
	rangemap.Pair{UI: "2020+", Backend: "2020+"},
)

// ICPCriteria é o filtro de perfil de cliente ideal no vocabulário da interface
type ICPCriteria struct {
	Enabled       bool     `json:"enabled"`
	EmployeeSizes []string `json:"employee_sizes"`
	FoundedYears  []string `json:"founded_years"`
}

// ICPCriteriaPayload é o corpo aceito pelo backend, já no vocabulário dele
type ICPCriteriaPayload struct {
	Enabled       bool     `json:"enabled"`
	EmployeeSizes []string `json:"employee_sizes"`
	FoundedYears  []string `json:"founded_years"`
}

// RemoteICPCriteria é o registro devolvido pelo backend. Enabled é opcional.
type RemoteICPCriteria struct {
	Enabled       *bool    `json:"enabled,omitempty"`
	EmployeeSizes []string `json:"employee_sizes"`
	FoundedYears  []string `json:"founded_years"`
}

// ToPayload converte para o vocabulário do backend. A conversão perde
// granularidade: faixas distintas da interface podem virar a mesma faixa.
func (c ICPCriteria) ToPayload() ICPCriteriaPayload {
	return ICPCriteriaPayload{
		Enabled:       c.Enabled,
		EmployeeSizes: EmployeeSizeRanges.ManyToBackend(c.EmployeeSizes),
		FoundedYears:  FoundedYearRanges.ManyToBackend(c.FoundedYears),
	}
}

// ToCriteria converte o registro remoto para o vocabulário da interface
func (r RemoteICPCriteria) ToCriteria(current ICPCriteria) ICPCriteria {
	criteria := ICPCriteria{
		Enabled:       current.Enabled,
		EmployeeSizes: EmployeeSizeRanges.ManyToUI(r.EmployeeSizes),
		FoundedYears:  FoundedYearRanges.ManyToUI(r.FoundedYears),
	}

	if r.Enabled != nil {
		criteria.Enabled = *r.Enabled
	}

	return criteria
}

func (c *ICPCriteria) ToggleEmployeeSize(label string) {
	c.EmployeeSizes = Toggle(c.EmployeeSizes, label)
}

func (c *ICPCriteria) ToggleFoundedYear(label string) {
	c.FoundedYears = Toggle(c.FoundedYears, label)
}

// ICPOptions lista as opções exibidas nos checkboxes
type ICPOptions struct {
	EmployeeSizes []string `json:"employee_sizes"`
	FoundedYears  []string `json:"founded_years"`
}

func DefaultICPOptions() ICPOptions {
	return ICPOptions{
		EmployeeSizes: EmployeeSizeRanges.UILabels(),
		FoundedYears:  FoundedYearRanges.UILabels(),
	}
}
