package notifications_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/notifications"
)

func TestType_Valid(t *testing.T) {
	t.Parallel()

	for _, typ := range []notifications.Type{
		notifications.TypeSubmissionApproved,
		notifications.TypeSubmissionRejected,
		notifications.TypeNewSubmission,
		notifications.TypePopularRestaurant,
	} {
		assert.True(t, typ.Valid(), typ)
	}

	assert.False(t, notifications.Type("").Valid())
	assert.False(t, notifications.Type("info").Valid())
}

func TestNotification_Payload(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := notifications.Notification{
		ID:        "n1",
		Recipient: "u1",
		Type:      notifications.TypeSubmissionApproved,
		Title:     "title",
		Message:   "message",
		Data:      map[string]any{notifications.DataRestaurantID: "r1"},
		Link:      "/restaurant/r1",
		IsRead:    true,
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	raw, err := json.Marshal(n.Payload())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "n1",
		"type": "submission_approved",
		"title": "title",
		"message": "message",
		"data": {"restaurantId": "r1"},
		"link": "/restaurant/r1",
		"createdAt": "2026-01-02T03:04:05Z"
	}`, string(raw))
}
