package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body shape of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets the HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithMessage sets the envelope message.
func WithMessage(msg string) JSONOption {
	return func(r *jsonResponse) { r.body.Message = msg }
}

// JSON renders a successful envelope around data. A nil data omits the field.
func JSON(data any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   Envelope{Success: true, Data: data},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders a failed envelope for err. See AsHTTPError for the mapping.
func JSONError(err error, opts ...JSONOption) Response {
	httpErr := AsHTTPError(err)
	r := &jsonResponse{
		status: httpErr.Code,
		body: Envelope{
			Success: false,
			Message: httpErr.message(),
			Code:    httpErr.Key,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
