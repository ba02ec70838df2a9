// Package httpx provides JSON request/response utilities shared by the API
// handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorBody is the wire shape of every failed response.
type ErrorBody struct {
	Error string `json:"error"`
}

// IDBody is the wire shape of every successful create response.
type IDBody struct {
	ID int64 `json:"id"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Created sends the assigned identifier of a freshly inserted row.
func Created(w http.ResponseWriter, id int64) {
	JSON(w, http.StatusCreated, IDBody{ID: id})
}

// Error sends an {"error": ...} body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// DecodeJSON decodes the request body into target, rejecting unknown fields
// so malformed submissions fail loudly instead of silently dropping data.
func DecodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("corpo da requisição vazio")
		}
		return fmt.Errorf("corpo da requisição inválido: %w", err)
	}
	return nil
}
