package handlers

import (
	"encoding/json"
	"net/http"

	"marketing-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func successResp(data interface{}) models.APIResponse {
	return models.APIResponse{Success: true, Data: data}
}

func errorResp(errMsg, message string, r *http.Request) models.APIError {
	return models.APIError{
		Success:   false,
		Error:     errMsg,
		Message:   message,
		RequestID: r.Header.Get("X-Request-ID"),
	}
}

func errorRespWithFields(errMsg string, fields map[string]string, r *http.Request) models.APIError {
	return models.APIError{
		Success:   false,
		Error:     errMsg,
		Fields:    fields,
		RequestID: r.Header.Get("X-Request-ID"),
	}
}
