package handlers

import (
	"encoding/json"
	"net/http"
)

// CodeInternalError код для непредвиденных ошибок сервера
const CodeInternalError = "internal_error"

// ErrorResponse тело ответа с ошибкой: машиночитаемый код и,
// для ошибок валидации, имя поля формы
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// DecodeJSON декодирует JSON тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с кодом ошибки
func RespondError(w http.ResponseWriter, status int, code string) {
	RespondJSON(w, status, ErrorResponse{Error: code})
}

// RespondFieldError пишет ответ с кодом ошибки и именем поля формы
func RespondFieldError(w http.ResponseWriter, status int, code, field string) {
	RespondJSON(w, status, ErrorResponse{Error: code, Field: field})
}

// RespondBadRequest пишет 400 с кодом ошибки
func RespondBadRequest(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusBadRequest, code)
}

// RespondUnauthorized пишет 401 с кодом ошибки
func RespondUnauthorized(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusUnauthorized, code)
}

// RespondNotFound пишет 404 с кодом ошибки
func RespondNotFound(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusNotFound, code)
}

// RespondConflict пишет 409 с кодом ошибки
func RespondConflict(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusConflict, code)
}

// RespondInternalError пишет 500 с общим кодом ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError)
}
