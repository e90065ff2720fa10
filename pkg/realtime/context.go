package realtime

import (
	"context"
	"net/http"
)

type hubContextKey struct{}

// WithHub adds the hub to the context.
func WithHub(ctx context.Context, h *Hub) context.Context {
	return context.WithValue(ctx, hubContextKey{}, h)
}

// FromContext retrieves the hub from the context.
func FromContext(ctx context.Context) (*Hub, bool) {
	h, ok := ctx.Value(hubContextKey{}).(*Hub)
	return h, ok && h != nil
}

// MustFromContext retrieves the hub from the context or panics.
func MustFromContext(ctx context.Context) *Hub {
	h, ok := FromContext(ctx)
	if !ok {
		panic("realtime: hub not found in context")
	}
	return h
}

// Middleware makes the hub available to downstream handlers through FromContext.
func (h *Hub) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithHub(r.Context(), h)))
	})
}
