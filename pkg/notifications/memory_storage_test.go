package notifications_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/notifications"
)

func seed(t *testing.T, s notifications.Storage, recipient string, n int, base time.Time) {
	t.Helper()
	for i := range n {
		require.NoError(t, s.Create(context.Background(), notifications.Notification{
			ID:        fmt.Sprintf("%s-%02d", recipient, i),
			Recipient: recipient,
			Type:      notifications.TypeNewSubmission,
			Title:     "t",
			Message:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
}

func TestMemoryStorage_Find(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := notifications.NewMemoryStorage()
	base := time.Now().UTC()
	seed(t, s, "u1", 5, base)
	seed(t, s, "u2", 2, base)

	t.Run("newest first", func(t *testing.T) {
		list, err := s.Find(ctx, notifications.Filter{Recipient: "u1"}, notifications.Page{})
		require.NoError(t, err)
		require.Len(t, list, 5)
		assert.Equal(t, "u1-04", list[0].ID)
		assert.Equal(t, "u1-00", list[4].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		list, err := s.Find(ctx, notifications.Filter{Recipient: "u1"}, notifications.Page{Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "u1-03", list[0].ID)
		assert.Equal(t, "u1-02", list[1].ID)
	})

	t.Run("skip past end", func(t *testing.T) {
		list, err := s.Find(ctx, notifications.Filter{Recipient: "u1"}, notifications.Page{Skip: 10})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		list, err := s.Find(ctx, notifications.Filter{Recipient: "nobody"}, notifications.Page{})
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestMemoryStorage_TieBreakByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := notifications.NewMemoryStorage()
	at := time.Now().UTC()
	for _, id := range []string{"b", "c", "a"} {
		require.NoError(t, s.Create(ctx, notifications.Notification{ID: id, Recipient: "u", CreatedAt: at}))
	}

	list, err := s.Find(ctx, notifications.Filter{Recipient: "u"}, notifications.Page{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestMemoryStorage_ReadState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := notifications.NewMemoryStorage()
	seed(t, s, "u1", 3, time.Now().UTC())
	at := time.Now().UTC()

	n, err := s.MarkRead(ctx, "u1-01", "u1", at)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.Equal(t, at, n.UpdatedAt)

	_, err = s.MarkRead(ctx, "u1-01", "someone-else", at)
	assert.ErrorIs(t, err, notifications.ErrNotFound)

	unread, err := s.Count(ctx, notifications.Filter{Recipient: "u1", UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	changed, err := s.MarkAllRead(ctx, "u1", at)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	changed, err = s.MarkAllRead(ctx, "u1", at)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}

func TestMemoryStorage_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := notifications.NewMemoryStorage()
	seed(t, s, "u1", 3, time.Now().UTC())

	assert.ErrorIs(t, s.Delete(ctx, "u1-00", "u2"), notifications.ErrNotFound)
	require.NoError(t, s.Delete(ctx, "u1-00", "u1"))
	assert.ErrorIs(t, s.Delete(ctx, "u1-00", "u1"), notifications.ErrNotFound)

	deleted, err := s.DeleteAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	total, err := s.Count(ctx, notifications.Filter{Recipient: "u1"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := notifications.NewMemoryStorage()
	require.NoError(t, s.Create(ctx, notifications.Notification{
		ID: "n", Recipient: "u", Data: map[string]any{"k": "v"},
	}))

	list, err := s.Find(ctx, notifications.Filter{Recipient: "u"}, notifications.Page{})
	require.NoError(t, err)
	list[0].Data["k"] = "changed"
	list[0].IsRead = true

	again, err := s.Find(ctx, notifications.Filter{Recipient: "u"}, notifications.Page{})
	require.NoError(t, err)
	assert.Equal(t, "v", again[0].Data["k"])
	assert.False(t, again[0].IsRead)
}
