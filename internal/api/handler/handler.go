package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/bakery-dashboard/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeReportError converte a falha de geração do relatório em resposta de API
func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Err.Error(), map[string]string{"stage": reportErr.Stage})
		return
	}

	apiErr := apiErrors.FromError(err, apiErrors.ErrReportGeneration)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}
