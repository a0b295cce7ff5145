package meeting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus   = errors.New("status de reunião inválido")
	ErrInvalidPeriod   = errors.New("período inválido")
	ErrMeetingNotFound = errors.New("reunião não encontrada")
	ErrFetchMeetings   = errors.New("erro ao buscar reuniões no banco de dados")
)

// MeetingError é um erro com contexto adicional para reuniões
type MeetingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *MeetingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MeetingError) Unwrap() error {
	return e.Err
}

func NewMeetingError(err error, code string, details string) *MeetingError {
	return &MeetingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
