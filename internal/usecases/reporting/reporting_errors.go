package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/classifying"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/loading"
	"github.com/vfg2006/bakery-dashboard/pkg/apiErrors"
)

// Etapas do pipeline
const (
	StageLoad      = "load"
	StageAggregate = "aggregate"
	StageClassify  = "classify"
	StageAssemble  = "assemble"
)

// ReportError indica em qual etapa a geração do relatório falhou
type ReportError struct {
	Err   error  // Erro base
	Code  string // Código de erro para API
	Stage string // Etapa do pipeline
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	return fmt.Sprintf("erro na etapa %s: %s", e.Stage, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um ReportError com o código de API correspondente ao erro
func NewReportError(err error, stage string) *ReportError {
	code := apiErrors.ErrReportGeneration

	var loadingErr *loading.LoadingError
	switch {
	case errors.As(err, &loadingErr):
		code = loadingErr.Code
	case errors.Is(err, domain.ErrEmptyTable):
		code = apiErrors.ErrEmptyDataset
	case errors.Is(err, classifying.ErrInsufficientSamples):
		code = apiErrors.ErrNotEnoughData
	}

	return &ReportError{Err: err, Code: code, Stage: stage}
}
