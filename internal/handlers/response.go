package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Тексты ошибок, которые видит клиент.
const (
	msgInvalidBody      = "Invalid request body"
	msgInternal         = "Internal server error"
	msgNotFound         = "Item not found"
	msgNameRequired     = "Name is required"
	msgInvalidCreds     = "Invalid credentials"
	msgLoginOK          = "Login successful"
	msgRouteNotFound    = "Not found"
	msgMethodNotAllowed = "Method not allowed"
)

// messageResponse — тело всех ответов с текстом.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// errTrailingData — после JSON-значения в теле есть что-то ещё.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeBody читает JSON-тело запроса. Пустое тело считается пустым объектом.
// Тело должно содержать ровно одно значение.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusNotFound, msgRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
