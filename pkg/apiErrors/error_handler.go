package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest = "VAL_001" // Requisição inválida (ex: top_n não numérico)

	// Erros de relatório (REP)
	ErrClientNotFound = "REP_001" // Cliente não existe na tabela sintetizada

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExportFailure  = "SRV_002" // Falha ao gerar o arquivo de exportação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest: http.StatusBadRequest,
	ErrClientNotFound: http.StatusNotFound,
	ErrInternalServer: http.StatusInternalServerError,
	ErrExportFailure:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
