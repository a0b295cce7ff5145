package enriching

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput  = errors.New("arquivo, campos e email são obrigatórios")
	ErrInvalidEmail  = errors.New("email de destino inválido")
	ErrUnknownField  = errors.New("campo de enriquecimento desconhecido")
	ErrNotCSV        = errors.New("o arquivo precisa ser CSV")
	ErrFileTooLarge  = errors.New("arquivo maior que o permitido")
	ErrEmptyFile     = errors.New("o CSV precisa ter uma linha de cabeçalho")
	ErrMalformedFile = errors.New("CSV mal formatado")
	ErrGenerateJobID = errors.New("erro ao gerar identificador do job")
)

// EnrichmentError é um erro com contexto adicional para o enriquecimento
type EnrichmentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details any    // Detalhes adicionais
}

func (e *EnrichmentError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

func NewEnrichmentError(err error, code string, details any) *EnrichmentError {
	return &EnrichmentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
