package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/binder"
)

type listRequest struct {
	Limit      int     `query:"limit"`
	Skip       uint    `query:"skip"`
	UnreadOnly bool    `query:"unreadOnly"`
	Cursor     *string `query:"cursor"`
	Ignored    string  `query:"-"`
	Sort       string
	internal   string
}

func TestQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    listRequest
		wantErr bool
	}{
		{
			name: "all fields",
			url:  "/?limit=5&skip=10&unreadOnly=true&sort=desc&Ignored=x",
			want: listRequest{Limit: 5, Skip: 10, UnreadOnly: true, Sort: "desc"},
		},
		{
			name: "empty query keeps zero values",
			url:  "/",
			want: listRequest{},
		},
		{
			name: "bare boolean flag",
			url:  "/?unreadOnly",
			want: listRequest{UnreadOnly: true},
		},
		{name: "bad int", url: "/?limit=ten", wantErr: true},
		{name: "negative uint", url: "/?skip=-1", wantErr: true},
		{name: "bad bool", url: "/?unreadOnly=maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got listRequest
			err := binder.Query()(httptest.NewRequest(http.MethodGet, tt.url, nil), &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_Pointer(t *testing.T) {
	t.Parallel()

	var req listRequest
	require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/?cursor=abc", nil), &req))
	require.NotNil(t, req.Cursor)
	assert.Equal(t, "abc", *req.Cursor)

	req = listRequest{}
	require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &req))
	assert.Nil(t, req.Cursor)
}

func TestQuery_InvalidTarget(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	var s listRequest
	assert.ErrorIs(t, binder.Query()(r, s), binder.ErrInvalidTarget)
	assert.ErrorIs(t, binder.Query()(r, (*listRequest)(nil)), binder.ErrInvalidTarget)
	n := 1
	assert.ErrorIs(t, binder.Query()(r, &n), binder.ErrInvalidTarget)
}

func TestPath(t *testing.T) {
	t.Parallel()

	type idRequest struct {
		ID string `path:"id"`
	}

	var got idRequest
	r := chi.NewRouter()
	r.Put("/{id}/read", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, binder.Path(chi.URLParam)(req, &got))
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/0190a1b2-read-me/read", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0190a1b2-read-me", got.ID)

	err := binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &got)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
}
