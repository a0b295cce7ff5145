package enriching

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Entradas do formulário
const (
	InputFile   = "file"
	InputFields = "fields"
	InputEmail  = "email"
)

// Form espelha o formulário de enriquecimento antes do envio
type Form struct {
	FileName string
	Fields   []string
	Email    string
}

func FormFromRequest(req domain.EnrichmentRequest) Form {
	return Form{
		FileName: req.FileName,
		Fields:   req.Fields,
		Email:    req.Email,
	}
}

// Missing lista as entradas ainda vazias, na ordem do formulário
func (f Form) Missing() []string {
	missing := []string{}
	if strings.TrimSpace(f.FileName) == "" {
		missing = append(missing, InputFile)
	}
	if len(f.Fields) == 0 {
		missing = append(missing, InputFields)
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, InputEmail)
	}
	return missing
}

// CanSubmit é falso enquanto faltar arquivo, campos ou email
func (f Form) CanSubmit() bool {
	return len(f.Missing()) == 0
}
