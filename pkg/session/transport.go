package session

import (
	"net/http"
	"strings"
)

// Transport extracts a session token from an incoming request.
type Transport interface {
	// GetToken returns the token or ErrSessionNotFound if absent.
	GetToken(r *http.Request) (string, error)
}

// HeaderTransport reads tokens from a request header.
type HeaderTransport struct {
	header string
	prefix string
}

// NewHeaderTransport creates a transport reading the Authorization header
// when header is empty. A "Bearer " prefix is stripped if present.
func NewHeaderTransport(header string) *HeaderTransport {
	if header == "" {
		header = "Authorization"
	}
	return &HeaderTransport{header: header, prefix: "Bearer "}
}

func (h *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := r.Header.Get(h.header)
	if value == "" {
		return "", ErrSessionNotFound
	}

	if len(value) >= len(h.prefix) && strings.EqualFold(value[:len(h.prefix)], h.prefix) {
		value = value[len(h.prefix):]
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrSessionNotFound
	}
	return value, nil
}

// QueryTransport reads tokens from a URL query parameter.
// Browsers cannot set headers on websocket handshakes, so sockets use this.
type QueryTransport struct {
	param string
}

// NewQueryTransport creates a transport reading the given parameter,
// "token" when empty.
func NewQueryTransport(param string) *QueryTransport {
	if param == "" {
		param = "token"
	}
	return &QueryTransport{param: param}
}

func (q *QueryTransport) GetToken(r *http.Request) (string, error) {
	token := strings.TrimSpace(r.URL.Query().Get(q.param))
	if token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// CompositeTransport tries transports in order and returns the first token found.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a transport that chains the given ones.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

func (c *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, t := range c.transports {
		token, err := t.GetToken(r)
		if err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}
