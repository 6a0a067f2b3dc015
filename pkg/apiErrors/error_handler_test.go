package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{
			name:           "Falha de exportação responde 500 com SRV_002",
			code:           ErrExportFailure,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Cliente não encontrado responde 404",
			code:           ErrClientNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Requisição inválida responde 400",
			code:           ErrInvalidRequest,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Código desconhecido cai em 500",
			code:           "XXX_999",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
