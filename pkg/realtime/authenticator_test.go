package realtime_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/realtime"
)

func tokenResolver(valid map[string]string) realtime.IdentityResolverFunc {
	return func(r *http.Request) (string, error) {
		userID, ok := valid[r.URL.Query().Get("token")]
		if !ok {
			return "", errors.New("unknown token")
		}
		return userID, nil
	}
}

func TestAuthenticator_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolver realtime.IdentityResolver
		url      string
		wantUser string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			resolver: tokenResolver(map[string]string{"good": "user-1"}),
			url:      "/socket?token=good",
			wantUser: "user-1",
		},
		{
			name:     "resolution failure",
			resolver: tokenResolver(map[string]string{"good": "user-1"}),
			url:      "/socket?token=bad",
			wantErr:  true,
		},
		{
			name: "empty identity",
			resolver: realtime.IdentityResolverFunc(func(*http.Request) (string, error) {
				return "", nil
			}),
			url:     "/socket",
			wantErr: true,
		},
		{
			name:    "no resolver configured",
			url:     "/socket",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg := realtime.NewRegistry()
			auth := realtime.NewAuthenticator(tt.resolver, reg, nil)

			userID, err := auth.Authenticate(httptest.NewRequest(http.MethodGet, tt.url, nil))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, realtime.ErrAuthenticationRejected)
				assert.Equal(t, 0, reg.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, userID)
		})
	}
}

func TestAuthenticator_Admit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("registers channel", func(t *testing.T) {
		t.Parallel()
		reg := realtime.NewRegistry()
		auth := realtime.NewAuthenticator(nil, reg, nil)
		ch := newFakeChannel("a")

		adm := auth.Admit(ctx, "user-1", ch)
		assert.Equal(t, "user-1", adm.UserID)
		assert.Equal(t, "a", adm.Channel().ID())

		got, ok := reg.Lookup("user-1")
		require.True(t, ok)
		assert.Equal(t, "a", got.ID())
	})

	t.Run("channel close releases the entry", func(t *testing.T) {
		t.Parallel()
		reg := realtime.NewRegistry()
		auth := realtime.NewAuthenticator(nil, reg, nil)
		ch := newFakeChannel("a")

		auth.Admit(ctx, "user-1", ch)
		require.NoError(t, ch.Close())

		require.Eventually(t, func() bool { return reg.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("close of superseded channel keeps the newer one", func(t *testing.T) {
		t.Parallel()
		reg := realtime.NewRegistry()
		auth := realtime.NewAuthenticator(nil, reg, nil)
		first := newFakeChannel("first")
		second := newFakeChannel("second")

		firstAdm := auth.Admit(ctx, "user-1", first)
		auth.Admit(ctx, "user-1", second)

		require.NoError(t, first.Close())
		firstAdm.Release()

		got, ok := reg.Lookup("user-1")
		require.True(t, ok)
		assert.Equal(t, "second", got.ID())
	})

	t.Run("release is idempotent", func(t *testing.T) {
		t.Parallel()
		reg := realtime.NewRegistry()
		auth := realtime.NewAuthenticator(nil, reg, nil)

		adm := auth.Admit(ctx, "user-1", newFakeChannel("a"))
		adm.Release()
		adm.Release()

		assert.Equal(t, 0, reg.Len())
	})
}
