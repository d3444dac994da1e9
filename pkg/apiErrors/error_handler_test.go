package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "fonte indisponível", code: ErrDataSource, wantStatus: http.StatusServiceUnavailable},
		{name: "planilha inválida", code: ErrDataFormat, wantStatus: http.StatusUnprocessableEntity},
		{name: "não encontrado", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "job em andamento", code: ErrJobAlreadyRunning, wantStatus: http.StatusConflict},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrDataSource).Code)

	apiErr := FromError(errors.New("falhou"), ErrDataSource)
	assert.Equal(t, ErrDataSource, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
