package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API do painel
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_002" // Formato de saída inválido
	ErrNotFound       = "VAL_003" // Recurso não encontrado

	// Erros de dados
	ErrDataSource    = "DATA_001" // Fonte de vendas indisponível
	ErrDataFormat    = "DATA_002" // Planilha com coluna, data ou valor inválido
	ErrEmptyDataset  = "DATA_003" // Tabela de vendas vazia
	ErrNotEnoughData = "DATA_004" // Clientes insuficientes para treinar o classificador

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrReportGeneration  = "SRV_002" // Falha ao gerar o relatório
	ErrRendering         = "SRV_003" // Falha ao renderizar gráfico ou página
	ErrJobAlreadyRunning = "SRV_004" // Exportação já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidFormat:     http.StatusBadRequest,
	ErrNotFound:          http.StatusNotFound,
	ErrDataSource:        http.StatusServiceUnavailable,
	ErrDataFormat:        http.StatusUnprocessableEntity,
	ErrEmptyDataset:      http.StatusUnprocessableEntity,
	ErrNotEnoughData:     http.StatusUnprocessableEntity,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrReportGeneration:  http.StatusInternalServerError,
	ErrRendering:         http.StatusInternalServerError,
	ErrJobAlreadyRunning: http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// Status retorna o status HTTP associado ao código
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
