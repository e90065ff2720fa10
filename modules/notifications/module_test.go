package notifications_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/dmitrymomot/pushkit/modules/notifications"
	"github.com/dmitrymomot/pushkit/pkg/notifications"
	"github.com/dmitrymomot/pushkit/pkg/session"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	svc    *notifications.Service
	server *httptest.Server
	tokens map[string]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	sessions := session.New(session.WithStore(store))

	svc := notifications.NewService(notifications.NewMemoryStorage(), nil)
	srv := httptest.NewServer(sessions.RequireAuth(api.New(svc).Handle()))
	t.Cleanup(srv.Close)

	f := &fixture{svc: svc, server: srv, tokens: map[string]string{}}
	for _, u := range []string{"alice", "bob"} {
		s, err := sessions.Issue(context.Background(), u)
		require.NoError(t, err)
		f.tokens[u] = s.Token
	}
	return f
}

func (f *fixture) do(t *testing.T, user, method, path string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, f.server.URL+path, nil)
	require.NoError(t, err)
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+f.tokens[user])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func (f *fixture) seed(t *testing.T, user string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for range n {
		created, err := f.svc.NotifyApproved(context.Background(), user, "Kimchi House", "rest1")
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

func TestList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ids := f.seed(t, "alice", 3)
	f.seed(t, "bob", 1)

	status, body := f.do(t, "alice", http.MethodGet, "/?limit=2")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)

	var res notifications.ListResult
	require.NoError(t, json.Unmarshal(body.Data, &res))
	require.Len(t, res.Notifications, 2)
	assert.Equal(t, ids[2], res.Notifications[0].ID)
	assert.Equal(t, int64(3), res.Total)
	assert.Equal(t, int64(3), res.UnreadCount)
}

func TestList_BadQuery(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	status, body := f.do(t, "alice", http.MethodGet, "/?limit=abc")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)

	status, _ = f.do(t, "alice", http.MethodGet, "/?skip=-1")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnauthenticated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	status, body := f.do(t, "", http.MethodGet, "/")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)
}

func TestMarkRead(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ids := f.seed(t, "alice", 2)

	status, body := f.do(t, "bob", http.MethodPut, "/"+ids[0]+"/read")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", body.Code)

	status, body = f.do(t, "alice", http.MethodPut, "/"+ids[0]+"/read")
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Notification notifications.Notification `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.True(t, data.Notification.IsRead)
	assert.Equal(t, ids[0], data.Notification.ID)

	status, body = f.do(t, "alice", http.MethodPut, "/read-all")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"modifiedCount":1}`, string(body.Data))

	_, body = f.do(t, "alice", http.MethodPut, "/read-all")
	assert.JSONEq(t, `{"modifiedCount":0}`, string(body.Data))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ids := f.seed(t, "alice", 3)

	status, _ := f.do(t, "bob", http.MethodDelete, "/"+ids[0])
	assert.Equal(t, http.StatusNotFound, status)

	status, body := f.do(t, "alice", http.MethodDelete, "/"+ids[0])
	require.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Message)

	status, _ = f.do(t, "alice", http.MethodDelete, "/"+ids[0])
	assert.Equal(t, http.StatusNotFound, status)

	status, body = f.do(t, "alice", http.MethodDelete, "/all")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deletedCount":2}`, string(body.Data))
}

type failingService struct{ api.Service }

func (failingService) ListForUser(context.Context, string, notifications.ListOptions) (*notifications.ListResult, error) {
	return nil, errors.Join(notifications.ErrPersistence, errors.New("socket closed"))
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	h := api.New(failingService{}, api.WithIdentity(func(context.Context) (string, bool) {
		return "alice", true
	})).Handle()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "socket closed")
}
