package loading

import (
	"errors"
	"fmt"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/apiErrors"
)

var (
	ErrUnknownSource = errors.New("unknown sales source")
	ErrLoadFailed    = errors.New("error loading sales table")
)

// LoadingError carrega o código de API correspondente à falha de carga
type LoadingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Source  string // Fonte de dados envolvida
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LoadingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Source, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Source)
}

// Unwrap retorna o erro subjacente
func (e *LoadingError) Unwrap() error {
	return e.Err
}

// NewLoadingError classifica o erro da fonte no código de API adequado
func NewLoadingError(err error, source string) *LoadingError {
	code := apiErrors.ErrInternalServer
	switch {
	case errors.Is(err, domain.ErrSourceUnavailable), errors.Is(err, domain.ErrSheetNotFound):
		code = apiErrors.ErrDataSource
	case errors.Is(err, domain.ErrMissingColumn),
		errors.Is(err, domain.ErrUnparseableDate),
		errors.Is(err, domain.ErrInvalidAmount):
		code = apiErrors.ErrDataFormat
	}

	return &LoadingError{
		Err:     err,
		Code:    code,
		Source:  source,
		Details: ErrLoadFailed.Error(),
	}
}
