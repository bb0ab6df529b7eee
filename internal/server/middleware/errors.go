package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/montagemotion/backoffice/pkg/api"
)

// writeError отправляет ошибку в том же JSON формате, что и handlers,
// чтобы клиенту не приходилось разбирать два разных формата ошибок
func writeError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
