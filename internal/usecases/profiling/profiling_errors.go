package profiling

import (
	"errors"
	"fmt"
)

var (
	ErrSettingsNotMounted = errors.New("configurações não foram abertas")
	ErrUnknownChannel     = errors.New("canal de entrega desconhecido")
	ErrMissingQuestion    = errors.New("categoria e pergunta são obrigatórias")
	ErrDraftStore         = errors.New("erro ao acessar rascunho de configurações")
)

// ProfilingError é um erro com contexto adicional para as configurações de ICP
type ProfilingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // Usuário dono do rascunho
	Details string // Detalhes adicionais
}

func (e *ProfilingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProfilingError) Unwrap() error {
	return e.Err
}

func NewProfilingError(err error, code string, userID string, details string) *ProfilingError {
	return &ProfilingError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
