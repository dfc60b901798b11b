package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body every endpoint returns, success or failure.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      *APIError   `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Pagination accompanies list endpoints that page their results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination derives the page count from the item total.
func NewPagination(page, limit int, totalItems int64) *Pagination {
	totalPages := int(totalItems) / limit
	if int(totalItems)%limit != 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func write(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// The envelope contains only marshalable types; if encoding fails the
	// connection is gone and there is nothing left to tell the client.
	_ = json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, statusCode int, code, message string, fields map[string]string) {
	write(w, statusCode, Envelope{
		Error: &APIError{Code: code, Message: message, Fields: fields},
	})
}

func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Paginated(w http.ResponseWriter, data interface{}, pagination *Pagination) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: pagination})
}

func BadRequest(w http.ResponseWriter, message string) {
	fail(w, http.StatusBadRequest, "bad_request", message, nil)
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	fail(w, http.StatusUnprocessableEntity, "validation_failed", "Validation failed", fields)
}

func Unauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, "forbidden", message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, "not_found", message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, "conflict", message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, "internal_error", message, nil)
}
